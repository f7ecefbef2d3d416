// Package viz renders vcfem meshes and analysis results to image files
// via gonum.org/v1/plot. It covers the plotting surface of the original
// tool: element fills by material color, domain boundaries, preserved
// edges, input vertices, generated nodes, quadrature points, a nodal
// head shading for flow results, and the nodes-per-element histogram.
//
// A MeshPlot is a thin builder over *plot.Plot; layers are added in
// draw order and the figure is written with Save:
//
//	mp, err := viz.NewMeshPlot(mesh)
//	_ = mp.DrawElements()
//	_ = mp.DrawMeshEdges()
//	_ = mp.DrawNodes()
//	err = mp.Save(10*vg.Inch, 10*vg.Inch, "mesh.png")
//
// The underlying *plot.Plot is exposed for axis labels, titles, and any
// further gonum/plot customization.
package viz
