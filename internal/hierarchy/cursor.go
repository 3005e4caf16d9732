package hierarchy

import (
	"bufio"
	"bytes"
	"io"
	"sync"

	"github.com/geohier/ghier/internal/constants"
	"github.com/geohier/ghier/internal/pool"
)

// lineCursor hands out input lines to the reader goroutines. It is the
// single serialization point of a read run, the lock covers nothing
// but taking the next line and advancing the stream.
type lineCursor struct {
	mutex sync.Mutex
	br    *bufio.Reader
	err   error
}

func newLineCursor(r io.Reader) *lineCursor {
	return &lineCursor{br: bufio.NewReaderSize(r, constants.ReadBufferSize)}
}

// takeLine returns the next line without its trailing newline. The
// buffer comes from the shared pool and must be recycled by the
// caller. Once the stream has ended or failed the condition is
// latched, every further call reports it again. A clean end of stream
// is io.EOF.
func (c *lineCursor) takeLine() (*bytes.Buffer, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.err != nil {
		return nil, c.err
	}

	buf := pool.BytesBuffer.Get().(*bytes.Buffer)
	for {
		chunk, err := c.br.ReadSlice('\n')
		buf.Write(chunk)

		switch err {
		case nil:
			buf.Truncate(buf.Len() - 1)
			return buf, nil
		case bufio.ErrBufferFull:
			// Line longer than the read buffer, keep collecting.
			continue
		case io.EOF:
			c.err = io.EOF
			if buf.Len() > 0 {
				// Final line without a trailing newline.
				return buf, nil
			}
			pool.RecycleBytesBuffer(buf)
			return nil, c.err
		default:
			c.err = err
			pool.RecycleBytesBuffer(buf)
			return nil, c.err
		}
	}
}
