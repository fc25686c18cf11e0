package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/allpaths/bfs"
	"github.com/katalvlaran/allpaths/internal/config"
)

const noPathMessage = "No path exists"

// jsonResult is the --json wire shape. Hops is -1 when no path exists.
type jsonResult struct {
	Start     int     `json:"start"`
	End       int     `json:"end"`
	Hops      int     `json:"hops"`
	Paths     [][]int `json:"paths"`
	Truncated bool    `json:"truncated,omitempty"`
}

// render writes res to w in the requested format.
func render(w io.Writer, format string, res *bfs.Result) error {
	switch format {
	case config.FormatJSON:
		return renderJSON(w, res)
	default:
		return renderText(w, res)
	}
}

// renderText prints one "a -> b -> c" line per path.
func renderText(w io.Writer, res *bfs.Result) error {
	if !res.Found() {
		_, err := fmt.Fprintln(w, noPathMessage)
		return err
	}
	for _, p := range res.Paths {
		if _, err := fmt.Fprintln(w, p); err != nil {
			return err
		}
	}
	return nil
}

func renderJSON(w io.Writer, res *bfs.Result) error {
	out := jsonResult{
		Start:     res.Start,
		End:       res.End,
		Hops:      res.Hops(),
		Paths:     make([][]int, 0, len(res.Paths)),
		Truncated: res.Truncated,
	}
	for _, p := range res.Paths {
		out.Paths = append(out.Paths, []int(p))
	}
	enc := json.NewEncoder(w)
	return enc.Encode(out)
}
