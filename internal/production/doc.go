// Package production provides production integrations for an explored
// model: summary-report persistence as JSON or YAML. Implements the
// persistence shape using the standard library and gopkg.in/yaml.v3, the
// same pairing the teacher's own persister uses for MachineSnapshot.
package production
