package cmd

import (
	"flag"

	"github.com/etnz/finances/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
//
// Subcommand flags are read from their SetFlags, so that completion never
// drifts from the actual flags.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub: map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{
			"client-file": predict.Files("*.jsonl"),
			"v":           predict.Nothing,
		},
	}
	for _, cmds := range Commands {
		for _, c := range cmds {
			fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
			c.SetFlags(fs)
			sub := &complete.Command{Flags: map[string]complete.Predictor{}}
			fs.VisitAll(func(fl *flag.Flag) {
				var p complete.Predictor = predict.Something
				if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
					p = predict.Nothing
				}
				sub.Flags[fl.Name] = p
			})
			root.Sub[c.Name()] = sub
		}
	}
	if topics, err := docs.GetAllTopics(); err == nil {
		root.Sub["topic"].Args = predict.Set(append(topics, "*"))
	}
	return root
}
