// Package mdffi renders Markdown to HTML and CommonMark and is the Go side of
// the libmdffi C shared library.
//
// The package itself is plain Go: options, the option field table, the
// rendering entry points and the options file loaders. The C boundary lives
// in cmd/libmdffi, which exports one function per option field plus the
// lifecycle and rendering calls, all built on the types here.
//
// # Building the C library
//
//	go build -buildmode=c-shared -o libmdffi.so ./cmd/libmdffi
//
// The build also writes libmdffi.h; include/mdffi.h declares the handle and
// string types it refers to.
//
// After changing the field table in fields.go, regenerate the setters:
//
//	go generate ./cmd/libmdffi
//
// # Quick Start
//
// From Go:
//
//	o := mdffi.NewOptions()
//	o.Extension.Strikethrough = true
//	o.Extension.Table = true
//	html, err := mdffi.MarkdownToHTML("Hello ~~world~~", o)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// From C:
//
//	mdffi_options opts = mdffi_options_new();
//	mdffi_set_extension_option_strikethrough(opts, true);
//	mdffi_str *html = mdffi_markdown_to_html(opts, text, strlen(text));
//	if (html != NULL) {
//		fwrite(html->data, 1, html->len, stdout);
//		mdffi_str_free(html);
//	}
//	mdffi_options_free(opts);
//
// # Configuration
//
// Options are grouped into extension, parse and render categories. Every
// field is a boolean, an unsigned size or an optional text value. Besides
// the setters, options can be loaded from YAML or JSON:
//
//	extension:
//	  strikethrough: true
//	  header_ids: "user-content-"
//	render:
//	  width: 80
//
// LoadOptionsFromFile reads a given path; DiscoverOptions looks for
// mdffi.yaml, mdffi.yml or mdffi.json in the working directory and its
// parents. Unknown fields are rejected.
//
// # Ownership Across the Boundary
//
//   - Options handles are created by mdffi_options_new, _clone, _from_file or
//     _from_json and released once with mdffi_options_free. Rendering calls
//     only borrow them.
//   - Every mdffi_str returned to the caller is released once with
//     mdffi_str_free. The data is NUL terminated; len excludes the NUL.
//   - Input text is copied before it is used; the caller keeps its buffer.
//
// # Error Handling
//
// Caller bugs and input problems are treated differently:
//
//   - A NULL handle, buffer or string aborts the process. The diagnostic
//     names the argument, for example "text is NULL".
//   - Text that is not valid UTF-8 is rejected without side effects: setters
//     leave the field unchanged and rendering calls return NULL. The reason is
//     available once from mdffi_last_error.
//
// In Go, errors are typed and can be inspected with errors.As or KindOf:
//
//	_, err := mdffi.MarkdownToHTMLBytes(raw, nil)
//	var encErr *mdffi.EncodingError
//	if errors.As(err, &encErr) {
//		log.Printf("bad input at byte %d", encErr.Offset)
//	}
//
// # Logging and Debugging
//
// The library logs through zap and is silent by default. In the shared
// library, set MDFFI_LOG to debug, info, warn or error to log to stderr.
// MDFFI_DEBUG_ALLOC=n keeps the last n released strings allocated and
// overwritten with 0xDD so use-after-free reads are easy to spot.
//
// Go callers can install their own logger with SetLogger.
//
// # Thread Safety
//
// Rendering is safe for concurrent use with distinct options, or with shared
// options nobody is mutating. An options object must not be changed while a
// render that borrows it is running.
package mdffi

// Version is the library version reported by mdffi_version.
const Version = "0.1.0"
