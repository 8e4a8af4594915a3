package mdffi

import "context"

type asyncResult[T any] struct {
	value T
	err   error
}

func runAsync[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	var zero T
	if ctx == nil {
		ctx = context.Background()
	}

	resultCh := make(chan asyncResult[T], 1)
	go func() {
		value, err := fn()
		resultCh <- asyncResult[T]{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case out := <-resultCh:
		return out.value, out.err
	}
}

// MarkdownToHTMLContext renders text as HTML in a goroutine.
//
// Cancellation is best-effort: the render itself cannot be interrupted, but
// the function returns ctx.Err() once the context is done. The options are
// copied first, so the caller may keep mutating o afterwards.
func MarkdownToHTMLContext(ctx context.Context, text string, o *Options) (string, error) {
	snapshot := o.Clone()
	return runAsync(ctx, func() (string, error) {
		return MarkdownToHTML(text, snapshot)
	})
}

// MarkdownToCommonMarkContext is the asynchronous form of MarkdownToCommonMark.
func MarkdownToCommonMarkContext(ctx context.Context, text string, o *Options) (string, error) {
	snapshot := o.Clone()
	return runAsync(ctx, func() (string, error) {
		return MarkdownToCommonMark(text, snapshot)
	})
}
