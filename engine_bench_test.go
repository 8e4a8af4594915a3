package mdffi

import (
	"context"
	"testing"
)

func benchmarkInput(b *testing.B) (string, *Options) {
	b.Helper()
	data, err := readFixture("gfm.md")
	if err != nil {
		b.Fatalf("failed to read fixture: %v", err)
	}
	o := fixtureOptions()
	o.Extension.FrontMatterDelimiter = StringPtr("---")
	return string(data), o
}

func BenchmarkMarkdownToHTML(b *testing.B) {
	text, o := benchmarkInput(b)
	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := MarkdownToHTML(text, o); err != nil {
			b.Fatalf("render failed: %v", err)
		}
	}
}

func BenchmarkMarkdownToHTMLParallel(b *testing.B) {
	text, o := benchmarkInput(b)
	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := MarkdownToHTMLContext(context.Background(), text, o); err != nil {
				b.Errorf("render failed: %v", err)
				return
			}
		}
	})
}

func BenchmarkMarkdownToCommonMark(b *testing.B) {
	text, o := benchmarkInput(b)
	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := MarkdownToCommonMark(text, o); err != nil {
			b.Fatalf("render failed: %v", err)
		}
	}
}
