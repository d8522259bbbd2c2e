// Package result models the data produced by the steps of a multi-step task flow.
//
// Every result embeds a Result carrying its identity (step identifier, start and
// end dates) and a UserInfo bag for payload that is not modelled as a field.
//
// WebViewStepResult is produced when a user completes a step rendered in an
// embedded web view. Its markup variants are not stored on the struct; they are
// read from UserInfo on every call. Producers must write them under these keys:
//
//	HTMLKey              ("html")              the markup that was shown
//	HTMLWithSignatureKey ("htmlWithSignature") the markup with the signature added
//
// A key that was never written, was written with nil, or holds something other
// than a string reads as absent.
package result
