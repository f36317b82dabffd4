/*
Copyright © 2024 Alexandre Pires

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/

package m3uparser

import "errors"

var (
	// ErrInvalidLocation is reported for location lines that are empty or cannot be
	// read as a URL or a filesystem path.
	ErrInvalidLocation = errors.New("invalid location")

	// ErrMalformedDirective marks a '#' line that is not an EXTINF directive.
	ErrMalformedDirective = errors.New("malformed directive")

	// ErrNotAFile is returned when the playlist path is not a regular file.
	ErrNotAFile = errors.New("not a regular file")

	// ErrNestedRead marks a nested playlist that could not be opened or read.
	ErrNestedRead = errors.New("nested playlist read failure")

	ErrPlaylistCycle = errors.New("nested playlist cycle")

	ErrMaxDepth = errors.New("nested playlist depth exceeded")

	ErrUnknownEncoding = errors.New("unknown character encoding")
)
