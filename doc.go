// Package aocinput loads puzzle input files into simple in-memory values.
//
// Files are resolved against the "inputs" directory under the working
// directory:
//
//	depths, err := aocinput.ReadInts("day01.txt")
//	elves, err := aocinput.ReadIntGroups("day01.txt")
//
// Each function reads the file once, holds no state between calls and is safe
// to call concurrently. Use New to read from another directory.
//
// Errors are *Error values classified by kind; match them with errors.Is
// against ErrNotFound, ErrIO and ErrParse, or with IsKind.
package aocinput
