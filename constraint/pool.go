package constraint

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// Tokenizers are short-lived objects when translating large batches of
// constraints. To avoid allocating one per constraint we will pool them.
type tokenizerPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalTokenizerPool *tokenizerPool

func init() {
	globalTokenizerPool = &tokenizerPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &Tokenizer{}, nil
		})
	globalTokenizerPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalTokenizerPool.opool = pool.NewObjectPool(globalTokenizerPool.ctx, factory, config)
}

// NewPooledTokenizer returns a tokenizer for input from a pool of tokenizers.
// Clients should call Release() after use.
func NewPooledTokenizer(input string) *Tokenizer {
	o, err := globalTokenizerPool.opool.BorrowObject(globalTokenizerPool.ctx)
	if err != nil {
		tracer().Errorf("cannot borrow tokenizer from pool: %v", err)
		return NewTokenizer(input)
	}
	tok := o.(*Tokenizer)
	tok.Reset(input)
	return tok
}

// Release clears the tokenizer and puts it back into the pool.
// The tokenizer must not be used afterwards.
func (tok *Tokenizer) Release() {
	tok.Reset("")
	_ = globalTokenizerPool.opool.ReturnObject(globalTokenizerPool.ctx, tok)
}

// ParsePooled parses a constraint string like Parse does, using a pooled
// tokenizer.
func ParsePooled(source string) (*Constraint, error) {
	tok := NewPooledTokenizer(source)
	tokens := tok.All()
	tok.Release()
	return ParseTokens(source, tokens)
}
