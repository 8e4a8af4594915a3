package main

/*
#include "mdffi.h"
*/
import "C"

import (
	"unsafe"

	"github.com/yhilem-ai/mdffi"
	"github.com/yhilem-ai/mdffi/internal/buffer"
	"github.com/yhilem-ai/mdffi/internal/strbox"
)

// Never freed: mdffi_version hands out the same pointer for the life of
// the process.
var cVersion = C.CString(mdffi.Version)

// mdffi_options_new allocates options with every extension off.
// Release with mdffi_options_free.
//
//export mdffi_options_new
func mdffi_options_new() C.mdffi_options {
	return C.mdffi_options(optionsNew())
}

// mdffi_options_free releases an options handle.
//
//export mdffi_options_free
func mdffi_options_free(options C.mdffi_options) {
	optionsFree(uintptr(options))
}

// mdffi_options_clone returns a new handle holding a deep copy.
//
//export mdffi_options_clone
func mdffi_options_clone(options C.mdffi_options) C.mdffi_options {
	return C.mdffi_options(optionsClone(uintptr(options)))
}

// mdffi_options_from_file loads a YAML or JSON options file. Returns 0 on
// failure; see mdffi_last_error.
//
//export mdffi_options_from_file
func mdffi_options_from_file(path *C.char, pathLen C.size_t) C.mdffi_options {
	return C.mdffi_options(optionsFromFile(unsafe.Pointer(path), uintptr(pathLen)))
}

// mdffi_options_from_json decodes options from a JSON document. Returns 0
// on failure; see mdffi_last_error.
//
//export mdffi_options_from_json
func mdffi_options_from_json(doc *C.char, docLen C.size_t) C.mdffi_options {
	return C.mdffi_options(optionsFromJSON(unsafe.Pointer(doc), uintptr(docLen)))
}

// mdffi_options_to_json returns the options as JSON, or NULL on failure.
//
//export mdffi_options_to_json
func mdffi_options_to_json(options C.mdffi_options) *C.mdffi_str {
	return (*C.mdffi_str)(optionsToJSON(uintptr(options)))
}

// mdffi_markdown_to_html renders text as HTML. The options are borrowed.
// Returns NULL when text is not valid UTF-8 or rendering fails.
//
//export mdffi_markdown_to_html
func mdffi_markdown_to_html(options C.mdffi_options, text *C.char, textLen C.size_t) *C.mdffi_str {
	return (*C.mdffi_str)(markdownToHTML(uintptr(options), unsafe.Pointer(text), uintptr(textLen)))
}

// mdffi_markdown_to_commonmark normalizes text to CommonMark. The options
// are borrowed. Returns NULL when text is not valid UTF-8 or rendering fails.
//
//export mdffi_markdown_to_commonmark
func mdffi_markdown_to_commonmark(options C.mdffi_options, text *C.char, textLen C.size_t) *C.mdffi_str {
	return (*C.mdffi_str)(markdownToCommonMark(uintptr(options), unsafe.Pointer(text), uintptr(textLen)))
}

// mdffi_str_free releases a string returned by this library.
//
//export mdffi_str_free
func mdffi_str_free(s *C.mdffi_str) {
	strFree(unsafe.Pointer(s))
}

// mdffi_last_error returns and clears the message of the last recoverable
// failure, or NULL if there was none. Release it with mdffi_str_free.
//
//export mdffi_last_error
func mdffi_last_error() *C.mdffi_str {
	return (*C.mdffi_str)(lastError())
}

// mdffi_version returns the library version. The string is static.
//
//export mdffi_version
func mdffi_version() *C.char {
	return cVersion
}

func optionsNew() uintptr {
	return newHandle(mdffi.NewOptions())
}

func optionsFree(h uintptr) {
	releaseHandle(h)
}

func optionsClone(h uintptr) uintptr {
	return newHandle(lookupOptions(h).Clone())
}

func optionsFromFile(p unsafe.Pointer, n uintptr) uintptr {
	path, err := buffer.Text(p, n, "path")
	if err != nil {
		recordError(err)
		return 0
	}
	o, err := mdffi.LoadOptionsFromFile(path)
	if err != nil {
		recordError(err)
		return 0
	}
	return newHandle(o)
}

func optionsFromJSON(p unsafe.Pointer, n uintptr) uintptr {
	doc, err := buffer.Text(p, n, "json")
	if err != nil {
		recordError(err)
		return 0
	}
	o, err := mdffi.ParseOptionsJSON([]byte(doc))
	if err != nil {
		recordError(err)
		return 0
	}
	return newHandle(o)
}

func optionsToJSON(h uintptr) unsafe.Pointer {
	data, err := lookupOptions(h).JSON()
	if err != nil {
		recordError(err)
		return nil
	}
	return strbox.New(string(data))
}

func markdownToHTML(h uintptr, p unsafe.Pointer, n uintptr) unsafe.Pointer {
	return invoke(h, p, n, mdffi.MarkdownToHTML)
}

func markdownToCommonMark(h uintptr, p unsafe.Pointer, n uintptr) unsafe.Pointer {
	return invoke(h, p, n, mdffi.MarkdownToCommonMark)
}

// invoke validates the input before the engine sees it and boxes the
// result. Any failure yields nil, never an empty box.
func invoke(h uintptr, p unsafe.Pointer, n uintptr, render func(string, *mdffi.Options) (string, error)) unsafe.Pointer {
	o := lookupOptions(h)
	text, err := buffer.Text(p, n, "text")
	if err != nil {
		recordError(err)
		return nil
	}
	out, err := render(text, o)
	if err != nil {
		recordError(err)
		return nil
	}
	return strbox.New(out)
}

func strFree(p unsafe.Pointer) {
	buffer.RequireNonNull(p, "str")
	strbox.Release(p)
}

func lastError() unsafe.Pointer {
	msg, ok := takeLastError()
	if !ok {
		return nil
	}
	return strbox.New(msg)
}
