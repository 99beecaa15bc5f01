// Package postprocess applies transformations to generated artifacts after
// synthesis and before they are written.
//
// Processors run in the order they were added:
//
//	chain := postprocess.NewChain()
//	chain.Add(processors.NewBanner("Generated by iconforge. DO NOT EDIT."))
//	out, err := chain.Process("dist/esm/XIcon.js", src)
package postprocess

import "fmt"

// Processor transforms the content of one artifact. Processors must be
// stateless and safe for concurrent use; a processor that does not apply to a
// path returns the content unchanged.
type Processor interface {
	Process(path string, content []byte) ([]byte, error)
}

// Func adapts a function to the Processor interface.
type Func func(path string, content []byte) ([]byte, error)

func (f Func) Process(path string, content []byte) ([]byte, error) {
	return f(path, content)
}

// Chain runs processors in sequence. A Chain must not be modified while
// Process is running.
type Chain struct {
	processors []Processor
}

func NewChain(processors ...Processor) *Chain {
	return &Chain{processors: processors}
}

func (c *Chain) Add(processor Processor) {
	c.processors = append(c.processors, processor)
}

// Process runs every processor on content. The first failure stops the chain.
func (c *Chain) Process(path string, content []byte) ([]byte, error) {
	result := content
	for i, processor := range c.processors {
		processed, err := processor.Process(path, result)
		if err != nil {
			return nil, fmt.Errorf("processor %d failed for %s: %w", i, path, err)
		}
		result = processed
	}
	return result, nil
}

func (c *Chain) Len() int {
	return len(c.processors)
}
