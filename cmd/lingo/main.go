// Command lingo translates UI strings through an AI provider, backed by the
// lingo translation cache.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ZaguanLabs/lingo"
	"github.com/ZaguanLabs/lingo/persist"
	"github.com/ZaguanLabs/lingo/provider"
)

// Build-time variables (can be overridden with ldflags)
var (
	version   = lingo.Version
	commit    = lingo.GitCommit
	buildDate = lingo.BuildDate
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("lingo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Flags
	locale := fs.String("locale", "", "Target locale (e.g., es_ES, ja_JP)")
	fallback := fs.String("fallback", "en_US", "Fallback locale")
	apiKey := fs.String("api-key", "", "OpenAI API key (default: OPENAI_API_KEY env)")
	model := fs.String("model", "gpt-4o-mini", "OpenAI model to use")
	cacheFile := fs.String("cache", "lingo.json", "Snapshot file path")
	redisURL := fs.String("redis", "", "Redis URL for snapshot persistence (overrides -cache)")
	rpm := fs.Int("rpm", 60, "Provider requests per minute")
	warmHTML := fs.Bool("warm", false, "Treat input as HTML and translate its text nodes")
	all := fs.Bool("all", false, "Retranslate every cached key into the target locale")
	showVersion := fs.Bool("version", false, "Show version")
	quiet := fs.Bool("quiet", false, "Suppress progress output")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", lingo.Name, version)
		if commit != "unknown" && commit != "" {
			fmt.Fprintf(stdout, "  commit:  %s\n", commit)
		}
		if buildDate != "unknown" && buildDate != "" {
			fmt.Fprintf(stdout, "  built:   %s\n", buildDate)
		}
		return nil
	}

	if *locale == "" {
		fs.Usage()
		return fmt.Errorf("-locale is required")
	}
	target := lingo.NormalizeLocale(*locale)
	fallbackLocale := lingo.NormalizeLocale(*fallback)

	// Get API key
	key := *apiKey
	if key == "" {
		key = os.Getenv("OPENAI_API_KEY")
	}
	if key == "" {
		return fmt.Errorf("no API key: use -api-key or set OPENAI_API_KEY")
	}

	// Snapshot persistence: redis when given, file otherwise
	var store persist.Store
	if *redisURL != "" {
		rs, err := persist.NewRedisStore(persist.RedisConfig{URL: *redisURL})
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer rs.Close()
		store = rs
	} else {
		store = persist.NewFileStore(*cacheFile)
	}

	// Provider chain: OpenAI with retry, rate limiting, and persistence
	var p lingo.Provider = provider.NewOpenAIProvider(provider.OpenAIConfig{
		APIKey: key,
		Model:  *model,
	})
	p = lingo.NewRetryableProvider(p, lingo.DefaultRetryConfig())
	p = lingo.NewRateLimitedProvider(p, lingo.RateLimitConfig{RequestsPerMinute: *rpm})

	c := lingo.NewCoordinator(target, provider.Persisted(p, store),
		lingo.WithFallbackLocale(fallbackLocale),
		lingo.WithCaching(true),
	)
	defer c.Close()

	ctx := context.Background()

	if *all {
		// The work list is the set of previously cached keys, so the
		// snapshot restore must have finished before computing it.
		if err := c.Flush(ctx); err != nil {
			return err
		}
		onProgress := func(p float64) {
			if !*quiet {
				fmt.Fprintf(stderr, "\rretranslating… %3.0f%%", p*100)
			}
		}
		if err := c.TranslateAll(ctx, target, true, onProgress); err != nil {
			return err
		}
		if !*quiet {
			fmt.Fprintln(stderr)
		}
		return nil
	}

	keys, err := readKeys(fs.Args(), *warmHTML)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return fmt.Errorf("no keys to translate: pass keys as arguments or on stdin")
	}

	c.Warm(keys, target)
	if err := c.Flush(ctx); err != nil {
		return err
	}

	for _, k := range keys {
		fmt.Fprintf(stdout, "%s\t%s\n", k, c.Tr(k, target))
	}
	return nil
}

// readKeys collects translation keys from args or stdin, optionally
// extracting them from HTML input.
func readKeys(args []string, fromHTML bool) ([]string, error) {
	if fromHTML {
		var input string
		if len(args) > 0 {
			data, err := os.ReadFile(args[0]) // #nosec G304 - CLI tool reads user-specified files
			if err != nil {
				return nil, fmt.Errorf("reading file: %w", err)
			}
			input = string(data)
		} else {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return nil, fmt.Errorf("reading stdin: %w", err)
			}
			input = string(data)
		}
		return lingo.KeysFromHTML(input), nil
	}

	if len(args) > 0 {
		return args, nil
	}

	var keys []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			keys = append(keys, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return keys, nil
}
