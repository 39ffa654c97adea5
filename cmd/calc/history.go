package main

import (
	"fmt"
	"io"
	"os"
)

type historyItem struct {
	expr   string
	result float64
	err    string
}

// history is a bounded list of evaluation results, oldest first. When
// full, adding evicts the oldest entry.
type history struct {
	items []historyItem
	max   int
}

func newHistory(max int) *history {
	if max <= 0 {
		max = 50
	}
	return &history{max: max}
}

func (h *history) add(expr string, result float64, err error) {
	if len(h.items) == h.max {
		copy(h.items, h.items[1:])
		h.items = h.items[:len(h.items)-1]
	}
	it := historyItem{expr: expr, result: result}
	if err != nil {
		it.err = err.Error()
	}
	h.items = append(h.items, it)
}

func (h *history) print(w io.Writer) {
	fmt.Fprintln(w, "history (newest last):")
	if len(h.items) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	for i, it := range h.items {
		if it.err != "" {
			fmt.Fprintf(w, "  [%02d] %s  =>  ERROR: %s\n", i+1, it.expr, it.err)
		} else {
			fmt.Fprintf(w, "  [%02d] %s  =>  %.15g\n", i+1, it.expr, it.result)
		}
	}
}

func (h *history) save(file string) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	for i, it := range h.items {
		if it.err != "" {
			fmt.Fprintf(f, "[%02d] %s = ERROR(%s)\n", i+1, it.expr, it.err)
		} else {
			fmt.Fprintf(f, "[%02d] %s = %.15g\n", i+1, it.expr, it.result)
		}
	}
	return f.Close()
}
