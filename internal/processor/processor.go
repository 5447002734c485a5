package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pagelate/pagelate/internal/browser"
	"github.com/pagelate/pagelate/internal/cli"
	"github.com/pagelate/pagelate/internal/language"
	"github.com/pagelate/pagelate/internal/notion"
	"github.com/pagelate/pagelate/internal/translate"
)

const (
	// fetchPageSize is the read page size for block-children listings.
	fetchPageSize = 100
	// uploadBatchSize is the number of blocks per append call.
	uploadBatchSize = 10

	notionSignupURL = "https://www.notion.so/my-integrations"
	deeplSignupURL  = "https://www.deepl.com/pro-api"
)

// Config carries the pipeline's collaborators so tests can substitute
// fake clients and credentials.
type Config struct {
	Flags      *cli.Flags
	Notion     *notion.Client
	Translator translate.Translator
	Stdout     io.Writer
	Stderr     io.Writer
	OpenURL    func(url string) error
}

// Processor handles the page translation pipeline
type Processor struct {
	flags      *cli.Flags
	notion     *notion.Client
	translator translate.Translator
	stdout     io.Writer
	stderr     io.Writer
	openURL    func(url string) error
}

// New creates a processor from an explicit configuration.
func New(cfg Config) *Processor {
	p := &Processor{
		flags:      cfg.Flags,
		notion:     cfg.Notion,
		translator: cfg.Translator,
		stdout:     cfg.Stdout,
		stderr:     cfg.Stderr,
		openURL:    cfg.OpenURL,
	}
	if p.stdout == nil {
		p.stdout = os.Stdout
	}
	if p.stderr == nil {
		p.stderr = os.Stderr
	}
	if p.openURL == nil {
		p.openURL = browser.OpenURL
	}
	return p
}

// NewFromEnv creates a processor wired to the real Notion and
// translation services. Missing credentials abort before any network
// work; for services with a signup page the page is opened in the
// browser first.
func NewFromEnv(flags *cli.Flags) (*Processor, error) {
	openURL := browser.OpenURL
	if flags.NoBrowser {
		openURL = func(string) error { return nil }
	}

	notionToken := cli.GetNotionToken()
	if notionToken == "" {
		openURL(notionSignupURL)
		return nil, fmt.Errorf("this tool requires a valid Notion API token; create an integration at %s and set NOTION_API_TOKEN", notionSignupURL)
	}

	translator, err := newTranslator(flags, openURL)
	if err != nil {
		return nil, err
	}

	return New(Config{
		Flags:      flags,
		Notion:     notion.NewClient(notionToken),
		Translator: translate.NewCachedTranslator(translator),
		OpenURL:    openURL,
	}), nil
}

func newTranslator(flags *cli.Flags, openURL func(string) error) (translate.Translator, error) {
	switch flags.TranslatorAPI {
	case "deepl":
		key := cli.GetDeepLKey()
		if key == "" {
			openURL(deeplSignupURL)
			return nil, fmt.Errorf("this tool requires a DeepL API token; sign up at %s and set DEEPL_API_TOKEN", deeplSignupURL)
		}
		return translate.NewDeepLTranslator(key), nil
	case "openai":
		key := cli.GetOpenAIKey()
		if key == "" {
			return nil, fmt.Errorf("the openai translator requires OPENAI_API_KEY")
		}
		return translate.NewOpenAITranslator(key), nil
	case "gemini":
		key := cli.GetGeminiKey()
		if key == "" {
			return nil, fmt.Errorf("the gemini translator requires GEMINI_API_KEY")
		}
		return translate.NewGeminiTranslator(key), nil
	default:
		return nil, fmt.Errorf("unknown translator %q (supported: deepl, openai, gemini)", flags.TranslatorAPI)
	}
}

// Run executes the whole pipeline for the configured flags.
func (p *Processor) Run(ctx context.Context) error {
	fromLang, ok := language.NormalizeFrom(p.flags.FromLang)
	if !ok {
		return fmt.Errorf("%s is not a supported language code (supported: %s)",
			fromLang, language.PrintableFromLangs())
	}
	toLang, ok := language.NormalizeTo(p.flags.ToLang)
	if !ok {
		return fmt.Errorf("%s is not a supported language code (supported: %s)",
			toLang, language.PrintableToLangs())
	}

	pageID := notion.PageIDFromURL(p.flags.URL)
	page, err := p.notion.RetrievePage(ctx, pageID)
	if err != nil {
		return fmt.Errorf("failed to read the page content: %w", err)
	}
	p.debugJSON("The page metadata", page)

	fmt.Fprintf(p.stdout, "\nWait a minute! Now translating the Notion page: %s\n\n(this may take some time) ...", p.flags.URL)

	blocks, err := p.BuildTranslatedBlocks(ctx, page.ID(), 0, fromLang, toLang)
	if err != nil {
		return err
	}

	newPage, err := p.CreateTranslatedPage(ctx, page, toLang)
	if err != nil {
		return err
	}

	if err := p.appendInBatches(ctx, newPage.ID(), blocks); err != nil {
		return err
	}

	fmt.Fprint(p.stdout, "... Done!"+
		"\n\nDisclaimer:"+
		"\nSome parts might not be perfect."+
		"\nIf the generated page is missing something, please adjust the details on your own.\n")
	fmt.Fprintf(p.stdout, "\nHere is the translated Notion page: %s\n", newPage.URL())

	if !p.flags.NoBrowser {
		if err := p.openURL(newPage.URL()); err != nil {
			fmt.Fprintf(p.stderr, "Warning: %v\n", err)
		}
	}
	return nil
}

// BuildTranslatedBlocks pages through blockID's children, translates
// every rich-text run and strips server-managed fields. nestedDepth
// carries the depth-truncation policy: children below depth 2 are cut
// off, and a column_list at depth 1 loses its children instead of being
// expanded.
func (p *Processor) BuildTranslatedBlocks(ctx context.Context, blockID string, nestedDepth int, fromLang, toLang string) ([]notion.Block, error) {
	var translated []notion.Block
	cursor := ""
	for {
		page, err := p.notion.ListChildren(ctx, blockID, cursor, fetchPageSize)
		if err != nil {
			return nil, err
		}
		p.debugJSON("Fetched original blocks", page.Results)
		fmt.Fprint(p.stdout, ".")

		for _, b := range page.Results {
			if nestedDepth >= 2 {
				b["has_children"] = false
			}
			if nestedDepth == 1 && b.Type() == "column_list" {
				if payload := b.TypePayload(); payload != nil {
					payload["children"] = []any{}
				}
				continue
			}
			if b.Type() == "unsupported" {
				continue
			}
			if err := p.translateRichText(ctx, b.RichText(), fromLang, toLang); err != nil {
				return nil, err
			}
			b.StripServerFields()
			translated = append(translated, b)
		}

		if !page.HasMore {
			return translated, nil
		}
		cursor = page.NextCursor
	}
}

// translateRichText overwrites each run's plain_text with its
// translation, and keeps a nested text.content in sync when present.
// Formatting runs are overwritten naively.
func (p *Processor) translateRichText(ctx context.Context, runs []any, fromLang, toLang string) error {
	for _, r := range runs {
		run, ok := r.(map[string]any)
		if !ok {
			continue
		}
		plainText, ok := run["plain_text"].(string)
		if !ok {
			continue
		}

		result, err := p.translator.Translate(ctx, plainText, fromLang, toLang)
		if err != nil {
			return fmt.Errorf("failed to translate %q: %w", plainText, err)
		}
		run["plain_text"] = result
		if text, ok := run["text"].(map[string]any); ok {
			text["content"] = result
		}
	}
	return nil
}

// CreateTranslatedPage copies page, parents the copy under the original,
// tags the title with the destination language and submits it for
// creation. The created page is returned with its fresh id and url.
func (p *Processor) CreateTranslatedPage(ctx context.Context, page notion.Block, toLang string) (notion.Block, error) {
	newPage, err := page.DeepCopy()
	if err != nil {
		return nil, err
	}
	newPage["parent"] = map[string]any{"page_id": page.ID()}

	// The placeholder is never applied to the submitted copy; a copy
	// without its own title run is an error below.
	originalTitle, ok := firstTitleRun(page)
	if !ok {
		originalTitle = map[string]any{"plain_text": "Translated page"}
	}

	newTitle, ok := firstTitleRun(newPage)
	if !ok {
		return nil, fmt.Errorf("page has no title property to translate")
	}

	originalText, ok := originalTitle["text"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("page title has no text content")
	}
	content, _ := originalText["content"].(string)
	plainText, _ := originalTitle["plain_text"].(string)

	newText, ok := newTitle["text"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("page title has no text content")
	}
	newText["content"] = fmt.Sprintf("%s (%s)", content, toLang)
	newTitle["plain_text"] = fmt.Sprintf("%s (%s)", plainText, toLang)

	newPage.StripServerFields()
	p.debugJSON("New page creation request params", newPage)

	created, err := p.notion.CreatePage(ctx, newPage)
	if err != nil {
		return nil, err
	}
	p.debugJSON("New page creation response", created)
	return created, nil
}

// appendInBatches uploads blocks to pageID in order, uploadBatchSize
// blocks per append call.
func (p *Processor) appendInBatches(ctx context.Context, pageID string, blocks []notion.Block) error {
	for begin := 0; begin < len(blocks); begin += uploadBatchSize {
		end := min(begin+uploadBatchSize, len(blocks))
		batch := blocks[begin:end]

		p.debugJSON("Block creation request params", batch)
		appended, err := p.notion.AppendChildren(ctx, pageID, batch)
		if err != nil {
			return err
		}
		p.debugJSON("Block creation response", appended)
	}
	return nil
}

// firstTitleRun returns properties.title.title[0] of a page object.
func firstTitleRun(page notion.Block) (map[string]any, bool) {
	properties, ok := page["properties"].(map[string]any)
	if !ok {
		return nil, false
	}
	titleProp, ok := properties["title"].(map[string]any)
	if !ok {
		return nil, false
	}
	runs, ok := titleProp["title"].([]any)
	if !ok || len(runs) == 0 {
		return nil, false
	}
	run, ok := runs[0].(map[string]any)
	return run, ok
}

func (p *Processor) debugJSON(label string, obj any) {
	if !p.flags.Debug {
		return
	}
	pretty, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		fmt.Fprintf(p.stderr, "debug: failed to marshal %s: %v\n", label, err)
		return
	}
	fmt.Fprintf(p.stdout, "%s: %s\n", label, pretty)
}
