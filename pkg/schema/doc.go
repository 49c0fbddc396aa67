// Package schema resolves which conditional field group is active for the
// current survey topic and carries the display definition (labels, input
// kinds, option lists) adapters use to present each field.
//
// Group membership is fixed in code and keyed by model.Topic; definition
// files loaded through LoadFS can relabel fields or change option lists but
// can never add fields to a group or make a field optional.
package schema
