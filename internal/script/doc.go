// Package script interprets image-editing command scripts.
//
// A script is a stream of whitespace-separated tokens. Each command name is
// followed by its arguments:
//
//	load images/koala.ppm koala
//	brighten 10 koala koala-bright
//	blur koala koala-blur
//	save out/koala-blur.png koala-blur
//
// Commands:
//   - load <path> <id>
//   - save <path> <id>
//   - brighten <delta> <src> <dest>
//   - red-component, green-component, blue-component <src> <dest>
//   - value-component, intensity-component, luma-component <src> <dest>
//   - blur, sharpen, grayscale, sepia <src> <dest>
//   - info <id>
//
// The token "-file <path>" runs another script and then ends the run with an
// *ExitError whose code the process should exit with.
//
// # Error Handling
//
// Errors are local to the command that raised them. The interpreter writes
// "<command>: <error>" to its output and continues with the next token. An
// unknown command name produces "Invalid command: <name>". A non-integer
// where an integer is expected is left in the stream, so it is read again as
// the next command name.
package script
