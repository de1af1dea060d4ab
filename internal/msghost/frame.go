package msghost

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
)

// maxFrame caps inbound message size. Browsers limit messages to a native
// host well below this; anything larger is a framing error, not data.
const maxFrame = 1 << 20

// ReadRequest reads one length-prefixed JSON request. Returns io.EOF when
// the extension closed the pipe cleanly.
func ReadRequest(r io.Reader) (Request, error) {
	var length uint32
	if err := binary.Read(r, binary.LittleEndian, &length); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return Request{}, io.EOF
		}
		return Request{}, fmt.Errorf("reading frame header: %w", err)
	}
	if length == 0 || length > maxFrame {
		return Request{}, fmt.Errorf("invalid frame length %d", length)
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return Request{}, fmt.Errorf("reading frame payload: %w", err)
	}

	var req Request
	if err := json.Unmarshal(payload, &req); err != nil {
		return Request{}, fmt.Errorf("decoding request: %w", err)
	}
	return req, nil
}

// WriteResponse writes one length-prefixed JSON response.
func WriteResponse(w io.Writer, resp Response) error {
	payload, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("encoding response: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(payload))); err != nil {
		return fmt.Errorf("writing frame header: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("writing frame payload: %w", err)
	}
	return nil
}
