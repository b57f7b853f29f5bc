// Package catch is the boundary between fallible calls and the Option/Result
// types. Unlike the combinators in opt and res, every function here recovers
// panics: a fault raised by the wrapped call, an error return or a rejected
// future is turned into None (or into Err for Try). Swallowed faults are
// logged at debug level through adtlog.
package catch
