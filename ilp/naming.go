package ilp

import "strconv"

// Variable names are stringly-keyed by construction (spec.md §9's
// "variable naming" design note): readable for MPS debugging, looked
// up again through solver.Facade.GetVarByName rather than through a
// parallel index this package would otherwise have to keep in sync.

// SPName and EdgName are exported so package decode can look up the
// same sp/edg columns Build registered, without duplicating the naming
// scheme.

func SPName(sink int, node string) string {
	return "sp#" + strconv.Itoa(sink) + "#" + node
}

func EdgName(edge int, combEdge string) string {
	return "edg#" + strconv.Itoa(edge) + "#" + combEdge
}

func spName(sink int, node string) string { return SPName(sink, node) }

func edgName(edge int, combEdge string) string { return EdgName(edge, combEdge) }

func dName(node, combEdge string) string {
	return "d#" + node + "#" + combEdge
}

func vulnName(node string, slot int) string {
	return "vuln#" + node + "#" + strconv.Itoa(slot)
}

func negdistName(a, b string) string {
	return "negdist#" + a + "#" + b
}

func dkName(a, b string, k int) string {
	return "dk#" + a + "#" + b + "#" + strconv.Itoa(k)
}
