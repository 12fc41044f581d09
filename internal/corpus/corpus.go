// --------------------------------------------------------------------------------
// Author: Giovanna Cardenas
//
// This file is part of a software project developed by Giovanna Cardenas.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// For more information about the MIT License, please visit:
// https://opensource.org/licenses/MIT
//
// Acknowledgment appreciated but not required.
// --------------------------------------------------------------------------------

package corpus

import (
	"fmt"
)

// Corpus pairs raw document text with a binary label by position. Documents
// are immutable once loaded.
type Corpus struct {
	Documents []string
	Labels    []int
}

// Add appends one document and its label.
func (c *Corpus) Add(text string, label int) {
	c.Documents = append(c.Documents, text)
	c.Labels = append(c.Labels, label)
}

// Len returns the number of documents.
func (c *Corpus) Len() int {
	return len(c.Documents)
}

// Positives returns the number of documents labeled 1.
func (c *Corpus) Positives() int {
	count := 0
	for _, label := range c.Labels {
		count += label
	}
	return count
}

// Validate checks the document/label pairing invariants.
func (c *Corpus) Validate() error {
	if len(c.Documents) != len(c.Labels) {
		return fmt.Errorf("corpus has %d documents for %d labels", len(c.Documents), len(c.Labels))
	}
	for i, label := range c.Labels {
		if label != 0 && label != 1 {
			return fmt.Errorf("label at position %d is %d, want 0 or 1", i, label)
		}
	}
	return nil
}
