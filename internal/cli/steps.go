package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/sortvis/internal/presentation/graph"
	"github.com/aretw0/sortvis/pkg/domain"
	"github.com/aretw0/sortvis/pkg/ports"
	"github.com/sanity-io/litter"
	"gopkg.in/yaml.v3"
)

// Step export formats.
const (
	FormatJSON    = "json"
	FormatYAML    = "yaml"
	FormatDump    = "dump"
	FormatMermaid = "mermaid"
)

// Formats lists the accepted export formats.
func Formats() []string {
	return []string{FormatJSON, FormatYAML, FormatDump, FormatMermaid}
}

// ExportSteps builds the steps of alg over values and writes them to w.
func ExportSteps(ctx context.Context, w io.Writer, engine ports.Replayer, alg domain.Algorithm, values []int, format string) error {
	steps, err := engine.BuildSteps(ctx, alg, values)
	if err != nil {
		return err
	}

	switch format {
	case FormatJSON:
		data, err := domain.MarshalSteps(steps)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(domain.WireSteps(steps)); err != nil {
			return err
		}
		return enc.Close()
	case FormatDump:
		_, err := fmt.Fprintln(w, litter.Sdump(steps))
		return err
	case FormatMermaid:
		if alg != domain.Quick {
			return fmt.Errorf("mermaid export draws the partition tree and needs the %q algorithm", domain.Quick)
		}
		_, err := io.WriteString(w, graph.GenerateMermaid(graph.PartitionTree(values, steps), nil))
		return err
	}
	return fmt.Errorf("unknown format %q, expected one of %v", format, Formats())
}
