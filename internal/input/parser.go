package input

import "github.com/mesh-intelligence/trellis/pkg/types"

// Parse classifies argv in a single pass. The first element is always the
// application name. Option tokens land in the bucket of the most recently
// recognised scope; the first non-option token becomes the command when
// recognizeCommand is set, the next one the subcommand when
// recognizeSubcommand is set, and everything else is positional.
//
// recognizeSubcommand implies recognizeCommand.
func Parse(argv []string, recognizeCommand, recognizeSubcommand bool) (types.ParsedArguments, error) {
	if len(argv) == 0 {
		return types.ParsedArguments{}, types.ErrEmptyArgumentVector
	}
	if recognizeSubcommand {
		recognizeCommand = true
	}

	p := types.ParsedArguments{
		ApplicationName:    argv[0],
		ApplicationOptions: types.Options{},
		CommandOptions:     types.Options{},
		SubcommandOptions:  types.Options{},
		Arguments:          []string{},
	}

	bucket := p.ApplicationOptions
	optionsDone := false

	for _, token := range argv[1:] {
		if token == "" {
			continue
		}

		if !optionsDone {
			if token == endOfOptions {
				optionsDone = true
				continue
			}
			if pairs, ok := parseOptionToken(token); ok {
				for _, pair := range pairs {
					register(bucket, pair)
				}
				continue
			}
		}

		switch {
		case recognizeCommand && p.CommandName == nil:
			name := token
			p.CommandName = &name
			bucket = p.CommandOptions
		case recognizeSubcommand && p.SubcommandName == nil:
			name := token
			p.SubcommandName = &name
			bucket = p.SubcommandOptions
		default:
			p.Arguments = append(p.Arguments, token)
		}
	}

	return p, nil
}

// clone returns a deep copy of p.
func clone(p types.ParsedArguments) types.ParsedArguments {
	out := types.ParsedArguments{
		ApplicationName:    p.ApplicationName,
		ApplicationOptions: cloneOptions(p.ApplicationOptions),
		CommandOptions:     cloneOptions(p.CommandOptions),
		SubcommandOptions:  cloneOptions(p.SubcommandOptions),
		Arguments:          append([]string{}, p.Arguments...),
	}
	if p.CommandName != nil {
		name := *p.CommandName
		out.CommandName = &name
	}
	if p.SubcommandName != nil {
		name := *p.SubcommandName
		out.SubcommandName = &name
	}
	return out
}

func cloneOptions(o types.Options) types.Options {
	out := make(types.Options, len(o))
	for k, v := range o {
		out[k] = v
	}
	return out
}
