// Package flow implements steady-state 2D seepage analysis on Voronoi
// polygon meshes generated by meshgen. It computes nodal hydraulic
// heads, element head gradients, and Darcy velocities for domains with
// piecewise-uniform hydraulic conductivity.
//
// # Formulation
//
// The governing equation is steady saturated flow, ∇·(K ∇h) = 0, with
// prescribed heads (Dirichlet) and nodal inflows (Neumann) on the
// boundary. Each polygon element contributes
//
//	kₑ = K·A·BᵀB + τ·(I−Π)ᵀ(I−Π)
//
// where B is the 2×n constant-gradient operator obtained from the
// divergence identity ∫∇h dA = ∮h·n ds evaluated with piecewise-linear
// head along the cell boundary, Π projects nodal values onto the
// linear field implied by that gradient, and τ = K stabilizes the
// zero-energy modes a constant-gradient polygon element otherwise has.
// Linear head fields are reproduced exactly (patch test), independent
// of cell shape.
//
// Steps of Solve:
//
//  1. Validate mesh state, materials, and boundary conditions (O(E)).
//  2. Assemble the global symmetric conductivity matrix (O(E·n²)).
//  3. Partition fixed-head and free nodes; condense the Dirichlet
//     columns into the right-hand side (O(N²)).
//  4. Solve the reduced system by Cholesky; fall back to dense LU when
//     the matrix is not numerically SPD. A reciprocal condition number
//     below Tolerance fails with ErrSingularSystem.
//  5. Memoize heads and the assembled matrix for result queries.
//
// Complexity: O(N³) worst case for the dense solve; meshes in the
// hundreds to low thousands of nodes solve interactively.
//
// # API
//
//	an := flow.NewPolyFlow2D(mesh)
//	_ = an.SetHead(leftNode, 20)
//	_ = an.SetHead(rightNode, 10)
//	err := an.Solve()
//	h, _ := an.Heads()
//	v, _ := an.Velocity(0)
//
// At least one fixed head is required; a pure-flux problem has no
// unique solution and fails with ErrNoHeadBC.
//
// # Errors
//
//	ErrNoMesh            - analysis has no mesh attached.
//	ErrMeshNotGenerated  - the attached mesh was not generated (or was
//	                       invalidated by later input edits).
//	ErrNoMaterial        - an element has no material region, or its
//	                       material has zero hydraulic conductivity.
//	ErrNodeIndex         - boundary-condition node out of range.
//	ErrElementIndex      - result query for a non-existent element.
//	ErrNoHeadBC          - Solve without any fixed head.
//	ErrSingularSystem    - the reduced system is numerically singular.
//	ErrNotSolved         - result query before a successful Solve.
//
// # Integration
//
//   - Consumes meshgen.PolyMesh2D and materials.Material.
//   - Linear algebra on gonum.org/v1/gonum/mat.
package flow
