/*
Package kml parses and writes KML, the XML dialect used by Google Earth and
most GIS tools for map annotations.

Documents are decoded into a typed tree rooted at ast.Node. Every coordinate
and measurement field is generic over ast.Float so that callers can choose
float32 or float64 precision. Parse and Decode use float64, ParseAs and
DecodeAs let the caller pick.

	root, err := kml.Parse(data)
	if err != nil {
		// handle error
	}
	for _, pm := range ast.Placemarks(root) {
		fmt.Println(pm.Name)
	}

Unknown elements are skipped and unknown attributes are kept on the node they
belong to, so a tree written back with Marshal reproduces the recognized
content of its source in schema order:

	out, err := kml.Marshal(root, kml.Indent(4))

The geo package converts geometry nodes to and from github.com/twpayne/go-geom
values. The kmz package reads and writes KMZ archives, and ReadFile accepts
either format. Build with the nokmz tag to leave archive support out.
*/
package kml
