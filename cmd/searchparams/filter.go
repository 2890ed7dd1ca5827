package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/urlkit/searchparams"
)

var json = jsoniter.Config{SortMapKeys: true}.Froze()

// decodeStream reads one query string per line and writes one JSON
// object per line. In strict mode the first malformed line aborts the
// stream, otherwise it is logged and skipped.
func decodeStream(r io.Reader, w io.Writer, cfg *Config, logger *zap.Logger) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		values, err := searchparams.Parse(line)
		if err != nil {
			if cfg.Filter.Strict {
				return fmt.Errorf("decode %q: %w", line, err)
			}
			logger.Warn("skip malformed query string",
				zap.String("query", line),
				zap.Error(err),
			)
			continue
		}

		var out []byte
		if cfg.Output.Pretty {
			out, err = json.MarshalIndent(values, "", "  ")
		} else {
			out, err = json.Marshal(values)
		}
		if err != nil {
			return err
		}

		if _, err = w.Write(append(out, '\n')); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// encodeStream reads one JSON object per line and writes one query
// string per line.
func encodeStream(r io.Reader, w io.Writer, cfg *Config, logger *zap.Logger) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		values := make(searchparams.Values)
		if err := json.UnmarshalFromString(line, &values); err != nil {
			if cfg.Filter.Strict {
				return fmt.Errorf("encode %q: %w", line, err)
			}
			logger.Warn("skip malformed JSON object",
				zap.String("line", line),
				zap.Error(err),
			)
			continue
		}

		if _, err := fmt.Fprintln(w, values.Encode()); err != nil {
			return err
		}
	}
	return scanner.Err()
}
