package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	gerrors "github.com/tessro/gplay/internal/errors"
	"github.com/tessro/gplay/internal/model"
	"github.com/tessro/gplay/internal/styles"
)

// sourcedResult is a decoded mutation result and the input it came from.
type sourcedResult struct {
	Source string
	Result model.MutationResult
}

func newMutationResultCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "mutation-result [file...]",
		Aliases: []string{"mr"},
		Short:   "Decode mutation results",
		Long: `Decode mutation results returned by write-style API calls.

Each input holds one result object or an array of them. With no files, or
with "-", the input is read from stdin. Missing fields are reported as empty.

Examples:
  gplay mutation-result response.json
  echo '{"id":"x","client_id":"y","response_code":"OK"}' | gplay mutation-result`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMutationResult(cmd, args)
		},
	}
}

func (a *app) runMutationResult(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"-"}
	}

	in := &inputReader{stdin: cmd.InOrStdin()}

	var p gerrors.PartialResult[[]sourcedResult]
	for _, src := range args {
		data, err := in.read(src)
		if err != nil {
			p.AddError(err)
			continue
		}

		results, err := DecodeMutationResults(data)
		if err != nil {
			p.AddError(fmt.Errorf("%s: %w", displaySource(src), err))
			continue
		}

		for _, r := range results {
			p.Data = append(p.Data, sourcedResult{Source: displaySource(src), Result: r})
		}
		a.logger.Debug("decoded mutation results", "source", displaySource(src), "count", len(results))
	}

	out := cmd.OutOrStdout()
	switch a.outputMode() {
	case OutputJSON:
		results := make([]model.MutationResult, len(p.Data))
		for i, r := range p.Data {
			results[i] = r.Result
		}
		if err := writeJSON(out, results); err != nil {
			return err
		}
	case OutputMinimal:
		for _, r := range p.Data {
			fmt.Fprintf(out, "%s\t%s\n", orDash(r.Result.ID), orDash(r.Result.ResponseCode))
		}
	default:
		if len(p.Data) > 0 {
			table := NewTableWriter(out, "SOURCE", "ID", "CLIENT ID", "RESPONSE")
			for _, r := range p.Data {
				table.Row(r.Source, orDash(r.Result.ID), orDash(r.Result.ClientID), styles.ResponseCode(r.Result.ResponseCode))
			}
			table.Flush()
		}
	}

	if p.HasErrors() {
		return fmt.Errorf("%w: %s", gerrors.ErrInvalidInput, p.ErrorSummary())
	}
	return nil
}

// DecodeMutationResults decodes a single result object or an array of them.
func DecodeMutationResults(data []byte) ([]model.MutationResult, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty input")
	}

	if trimmed[0] == '[' {
		var results []model.MutationResult
		if err := json.Unmarshal(trimmed, &results); err != nil {
			return nil, err
		}
		return results, nil
	}

	var r model.MutationResult
	if err := json.Unmarshal(trimmed, &r); err != nil {
		return nil, err
	}
	return []model.MutationResult{r}, nil
}

// inputReader reads named files, and stdin for "-". Stdin is read once and
// the same bytes are returned each time "-" is repeated.
type inputReader struct {
	stdin     io.Reader
	stdinData []byte
	stdinRead bool
}

func (r *inputReader) read(src string) ([]byte, error) {
	if src == "-" {
		if !r.stdinRead {
			data, err := io.ReadAll(r.stdin)
			if err != nil {
				return nil, fmt.Errorf("failed to read stdin: %w", err)
			}
			r.stdinData = data
			r.stdinRead = true
		}
		return r.stdinData, nil
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", src, err)
	}
	return data, nil
}

func displaySource(src string) string {
	if src == "-" {
		return "stdin"
	}
	return src
}
