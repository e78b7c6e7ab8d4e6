package conversation

import (
	"context"
	"image"
	"log"

	"github.com/younwookim/taskshow/internal/domain/dialogue"
)

// Fetcher loads the script and the images it references.
type Fetcher interface {
	FetchScript(ctx context.Context) (*dialogue.Script, error)
	FetchImage(ctx context.Context, url string) (image.Image, error)
}

// loadEvent reports one step of the background load.
type loadEvent struct {
	err    error
	script *dialogue.Script

	asset dialogue.Asset
	img   image.Image // nil when the asset failed to load
	done  int
	total int

	finished bool
}

// load fetches the script, then every asset in order, publishing progress
// on out. Individual asset failures are logged and skipped. The channel is
// closed when load returns.
func load(ctx context.Context, f Fetcher, out chan<- loadEvent) {
	defer close(out)

	script, err := f.FetchScript(ctx)
	if err != nil {
		if ctx.Err() == nil {
			send(ctx, out, loadEvent{err: err})
		}
		return
	}

	assets := script.Assets()
	if !send(ctx, out, loadEvent{script: script, total: len(assets)}) {
		return
	}

	for i, a := range assets {
		img, err := f.FetchImage(ctx, a.URL)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			log.Printf("[Dialogue] failed to load %s %q: %v", kindName(a.Kind), a.Name, err)
			img = nil
		}
		if !send(ctx, out, loadEvent{asset: a, img: img, done: i + 1, total: len(assets)}) {
			return
		}
	}

	send(ctx, out, loadEvent{finished: true})
}

func send(ctx context.Context, out chan<- loadEvent, ev loadEvent) bool {
	select {
	case out <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

func kindName(k dialogue.AssetKind) string {
	if k == dialogue.AssetEmoji {
		return "emoji"
	}
	return "avatar"
}
