package main

import (
	"fmt"
	"io"
	"strings"

	"onebuttonprompt/internal/core"
	"onebuttonprompt/internal/registry"
	"onebuttonprompt/internal/util"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type options struct {
	model         string
	subject       string
	artist        string
	imageType     string
	insanity      int
	manualSubject string
	prefix        string
	suffix        string
	seed          int64
	all           bool
	legacy        bool
	json          bool
}

func (o *options) request(cmd *cobra.Command) core.GenerationRequest {
	req := core.DefaultGenerationRequest()
	req.Model = o.model
	req.SubjectType = o.subject
	req.ArtistStyle = o.artist
	req.ImageType = o.imageType
	req.Insanity = o.insanity
	req.ManualSubject = o.manualSubject
	req.Prefix = o.prefix
	req.Suffix = o.suffix
	if cmd.Flags().Changed("seed") {
		req.Seed = lo.ToPtr(o.seed)
	}
	return req
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "promptgen",
		Short:         "Generate randomized text-to-image prompts",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	flags := root.Flags()
	flags.StringVarP(&opts.model, "model", "m", core.DefaultModel, "model key (sdxl, qwen, flux)")
	flags.StringVarP(&opts.subject, "subject", "s", core.SelectorRandom, "subject category or random")
	flags.StringVarP(&opts.artist, "artist", "a", core.SelectorRandom, "artist name, random or none")
	flags.StringVarP(&opts.imageType, "image-type", "t", core.SelectorRandom, "image type, random or none")
	flags.IntVarP(&opts.insanity, "insanity", "i", core.DefaultInsanity, fmt.Sprintf("prompt complexity (0-%d)", core.MaxInsanity))
	flags.StringVar(&opts.manualSubject, "manual", "", "use this subject verbatim")
	flags.StringVar(&opts.prefix, "prefix", "", "text placed before the prompt")
	flags.StringVar(&opts.suffix, "suffix", "", "text placed after the prompt")
	flags.Int64Var(&opts.seed, "seed", 0, "seed for a reproducible prompt")
	flags.BoolVar(&opts.all, "all", false, "generate one prompt per registered model")
	flags.BoolVar(&opts.legacy, "legacy", false, "use the legacy single-list generator")
	flags.BoolVar(&opts.json, "json", false, "print results as JSON")
	root.MarkFlagsMutuallyExclusive("all", "legacy")

	root.AddCommand(newModelsCmd())
	return root
}

func newModelsCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "models",
		Short: "List the available models",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := registry.NewDefault()
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, reg.ListModels())
			}
			for _, key := range reg.Keys() {
				profile, _ := reg.Get(key)
				if _, err := fmt.Fprintf(out, "%-6s %s\n", key, profile.Description); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print profiles as JSON")
	return cmd
}

func runGenerate(cmd *cobra.Command, opts *options) error {
	req := opts.request(cmd)
	out := cmd.OutOrStdout()

	switch {
	case opts.all:
		reg := registry.NewDefault()
		results := reg.GenerateAll(cmd.Context(), req)
		if opts.json {
			return writeJSON(out, results)
		}
		var failed []string
		for _, key := range reg.Keys() {
			entry := results[key]
			if entry.Err != nil {
				failed = append(failed, key)
				continue
			}
			if _, err := fmt.Fprintf(out, "[%s]\n%s\n\n", key, entry.Result.Prompt); err != nil {
				return err
			}
		}
		if len(failed) > 0 {
			return fmt.Errorf("generation failed for %s", strings.Join(failed, ", "))
		}
		return nil

	case opts.legacy:
		result, err := registry.NewLegacy().Generate(core.ModelLegacy, req)
		if err != nil {
			return err
		}
		return writeResult(out, result, opts.json)

	default:
		result, err := registry.NewDefault().Generate(req.Model, req)
		if err != nil {
			return err
		}
		return writeResult(out, result, opts.json)
	}
}

func writeResult(out io.Writer, result *core.GenerationResult, asJSON bool) error {
	if asJSON {
		return writeJSON(out, result)
	}
	_, err := fmt.Fprintf(out, "%s\n\nNegative: %s\n", result.Prompt, result.NegativePrompt)
	return err
}

func writeJSON(out io.Writer, v any) error {
	data, err := util.MarshalIndentJSON(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
