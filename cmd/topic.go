package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/rebalance/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `rebal topic [<topic>...]

Show documentation for the given topics; defaults to the readme.
Available topics: ` + strings.Join(docs.Topics(), ", ") + `
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	var b strings.Builder
	for _, topic := range topics {
		content, err := docs.Topic(topic)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
			return subcommands.ExitFailure
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	printMarkdown(b.String())

	return subcommands.ExitSuccess
}
