// ABOUTME: Analysis pipeline package
// ABOUTME: Runs decode, frequency, tree, code and metric stages for one audio clip
// Package analysis runs the one-shot statistical analysis of a stereo clip.
//
// The stages run in order and each consumes the previous stage's output:
//
//	Decode -> Interleave -> CountFrequencies -> BuildTree -> AssignCodes -> Compute
//
// Analyze works on an already loaded clip. Analyzer adds file loading,
// suppression of duplicate concurrent loads, and background execution
// whose outcome is delivered exactly once.
//
// Example:
//
//	a := analysis.New(analysis.Config{})
//	res, err := a.AnalyzeFile("song.wav")
//	fmt.Printf("entropy %.4f, average code length %.4f\n",
//	    res.Metrics.Entropy, res.Metrics.AverageCodeLength)
package analysis
