package cmd

import (
	"maps"

	"github.com/etnz/orcas/docs"
	"github.com/etnz/orcas/renderer"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the orcas command line for shell completion.
func Completion() *complete.Command {
	var formats predict.Set
	for _, f := range renderer.Formats {
		formats = append(formats, string(f))
	}
	output := map[string]complete.Predictor{
		"o":   formats,
		"out": predict.Files("*"),
	}
	with := func(extra map[string]complete.Predictor) map[string]complete.Predictor {
		flags := maps.Clone(output)
		maps.Copy(flags, extra)
		return flags
	}
	payload := predict.Files("*.json")

	topics, _ := docs.GetAllTopics()

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config":  predict.Or(predict.Files("*.toml"), predict.Files("*.yaml"), predict.Files("*.yml")),
			"units":   predict.Files("*.csv"),
			"catalog": predict.Or(predict.Files("*.json"), predict.Files("*.yaml"), predict.Files("*.yml")),
			"locale":  predict.Set{"USD", "EUR", "GBP", "IDR", "JPY", "CHF"},
			"v":       predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"format": {Flags: map[string]complete.Predictor{
				"m":    predict.Something,
				"k":    predict.Something,
				"unit": predict.Set{"%", "x", "ratio"},
				"mode": predict.Set{"percent_points"},
				"raw":  predict.Nothing,
			}},
			"resolve":    {Flags: map[string]complete.Predictor{"k": predict.Something}},
			"catalog":    {Flags: output},
			"historical": {Flags: with(map[string]complete.Predictor{"strict": predict.Nothing}), Args: payload},
			"simulate":   {Flags: output, Args: payload},
			"compare":    {Flags: output, Args: payload},
			"check":      {Flags: map[string]complete.Predictor{"path": predict.Something}, Args: payload},
			"topic":      {Flags: map[string]complete.Predictor{"l": predict.Nothing}, Args: predict.Set(topics)},
		},
	}
}
