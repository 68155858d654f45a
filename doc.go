// Package picoarg parses short command line options from an argument
// vector, and answers queries about the options that were matched.
//
// Options are declared before parsing, then matched in a single pass over
// the arguments:
//
//	parser := picoarg.New()
//	parser.Add('v', false)
//	parser.Add('f', true)
//	if err := parser.Parse(os.Args); err != nil {
//		os.Exit(1)
//	}
//	if parser.Has('v') {
//		fmt.Println("verbose")
//	}
//	for parser.Has('f') {
//		process(parser.PopValue('f'))
//	}
//
// A value is always inline in its token: -ffile.txt is the option f with
// the value "file.txt". -abc is the option a with the value "bc", never
// three grouped flags. PopValue removes the occurrence it returns, so an
// option given several times is drained one occurrence per call, in
// argument order.
package picoarg
