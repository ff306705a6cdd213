// Package inline implements the non-interactive, scriptable execution mode.
package inline

import (
	"fmt"
	"io"
	"os"

	"github.com/liberta-cli/liberta/source"
)

// Run executes one inline invocation: search for the query, narrow the
// results with the configured picker, optionally resolve details and
// download sources, then write everything to the output.
func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	pager, err := options.Source.Search(options.Query)
	if err != nil {
		return fmt.Errorf("search failed for %s: %w", options.Source.Name(), err)
	}

	items := pager.Items
	if picker, ok := options.ItemPicker.Get(); ok {
		if choice := picker(items); choice != nil {
			items = []*source.VideoSummary{choice}
		} else {
			items = nil
		}
	}

	results, err := resolve(items, options)
	if err != nil {
		return err
	}

	if options.Json {
		return writeJson(options.Out, results, options.Query)
	}

	for _, result := range results {
		if len(result.Downloads) > 0 {
			for _, file := range result.Downloads {
				fmt.Fprintln(options.Out, file.URL)
			}
			continue
		}

		fmt.Fprintln(options.Out, result.Summary.URL)
	}

	return nil
}

// resolve enriches the picked items per the options. Details and downloads
// are fetched item by item; a failing item aborts the run since inline
// callers expect complete data.
func resolve(items []*source.VideoSummary, options *Options) ([]*Item, error) {
	results := make([]*Item, 0, len(items))

	for _, item := range items {
		result := &Item{
			Source:  options.Source.Name(),
			Summary: item,
		}

		if options.IncludeDetails || options.IncludeDownloads {
			details, err := options.Source.ContentDetails(item.URL)
			if err != nil {
				return nil, fmt.Errorf("details failed for %s: %w", item.URL, err)
			}
			result.Details = details
		}

		if options.IncludeDownloads && result.Details != nil && !result.Details.IsSeries() {
			downloads, err := options.Source.VideoDownload(item.URL)
			if err != nil {
				return nil, fmt.Errorf("download resolution failed for %s: %w", item.URL, err)
			}
			result.Downloads = downloads
		}

		results = append(results, result)
	}

	return results, nil
}

func writeJson(out io.Writer, results []*Item, query string) error {
	data, err := asJson(results, query)
	if err != nil {
		return err
	}

	_, err = out.Write(data)
	return err
}
