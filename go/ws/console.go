// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package ws

import (
	"io"
)

// readerInput adapts an io.Reader to the Input interface. Each ReadAll call
// consumes the reader until EOF, so a second call on a drained stream yields
// an empty string.
type readerInput struct {
	reader io.Reader
}

// NewReaderInput creates an Input draining the given reader on every call.
func NewReaderInput(reader io.Reader) Input {
	return readerInput{reader: reader}
}

func (r readerInput) ReadAll() (string, error) {
	data, err := io.ReadAll(r.reader)
	return string(data), err
}

// writerOutput adapts an io.Writer to the Output interface.
type writerOutput struct {
	writer io.Writer
}

// NewWriterOutput creates an Output forwarding every string to the given
// writer.
func NewWriterOutput(writer io.Writer) Output {
	return writerOutput{writer: writer}
}

func (w writerOutput) WriteString(s string) error {
	_, err := io.WriteString(w.writer, s)
	return err
}
