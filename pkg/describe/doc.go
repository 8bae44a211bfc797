// Package describe turns checker trees into serializable descriptors for
// documentation and schema export. It only relies on the introspection
// methods of proptypes.ChainableChecker and the optional Named, Itemizer and
// ShapeChecker capabilities, so custom checkers are described as well, by Go
// type name when they do not report one.
//
//	d := describe.Describe(proptypes.New(userShape).Required().Model())
//	_ = describe.Encode(os.Stdout, describe.FormatYAML, d)
package describe
