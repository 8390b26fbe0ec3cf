// Package dockerline turns a binary blob into shell echo statements that
// rebuild its base64 encoding inside a container build.
//
// The blob is base64-encoded (standard alphabet, no wrapping), split into
// ChunkSize-character pieces, and each piece is rendered as one line:
//
//	    echo 'UldTaWdu'  > "${ZIG_ARCHIVE_SIGNATURE_BASE64_FILENAME}" && \
//	    echo 'Li4u'     >> "${ZIG_ARCHIVE_SIGNATURE_BASE64_FILENAME}" && \
//
// (shortened; real chunks are ChunkSize characters wide)
//
// The first line creates the target file and every later line appends to
// it. Quoted chunks are padded to FieldWidth so the redirects line up.
//
// # Usage
//
//	f := dockerline.NewFormatter()
//	if _, err := f.Render(os.Stdout, sig); err != nil {
//	    return err
//	}
package dockerline
