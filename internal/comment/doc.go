// Package comment implements the "Copy to Comment" processor.
//
// Some players cannot display the standard tags for composers, performers
// and other credits. This processor writes those credits, together with a
// description of the works a recording performs, into the comment tag.
//
// # Work descriptions
//
// Every performance relationship to a work becomes a line such as
// "Live cover recording of: Yesterday". The wording comes from a fixed
// table covering all 32 combinations of the live, medley, partial,
// instrumental and cover attributes.
//
// # Original performer
//
// For cover recordings, ResolveOriginalPerformer looks at the other
// performances of the same work and adds "Originally performed by: ..."
// when one artist set stands out.
package comment
