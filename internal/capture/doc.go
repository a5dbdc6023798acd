// Package capture reads recorded relay streams.
//
// A capture is a text file with one JSON relay frame per line, as written by
// tools like websocat. Blank lines and '#' comments are ignored so captures
// can be annotated by hand.
//
// Read keeps at most maxFrames frames in a ring buffer, so tailing a long
// capture uses O(maxFrames) memory in a single pass.
package capture
