package graph

// NoVertexFound - Custom error to inform that a referenced vertex is not
// present in the graph
type NoVertexFound struct {
	msg string
}

// Error - Used to notify that no vertex was found
func (E NoVertexFound) Error() string {
	if E.msg == "" {
		return "no vertex found"
	}
	return E.msg
}

// NoPathFound - Custom error to inform that no path exists between two vertices
type NoPathFound struct {
	msg string
}

// Error - Used to notify that no path was found
func (E NoPathFound) Error() string {
	if E.msg == "" {
		return "no path found"
	}
	return E.msg
}
