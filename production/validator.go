package production

import (
	"errors"
	"io"

	"github.com/dhamidi/parsekit/parse"
)

// Validator runs its inner production and then a validation function
// over the parsed children. A failed validation is not a failed
// alternative: it terminates the whole parse and surfaces as a parse
// error carrying the recorded position and message.
type Validator[T parse.TokenKind[T], N parse.NodeKind[N]] struct {
	symbol
	inner    parse.Production[T, N]
	validate func(children []*parse.ASTNode[N], code []byte) error
}

func NewValidator[T parse.TokenKind[T], N parse.NodeKind[N]](inner parse.Production[T, N], validate func([]*parse.ASTNode[N], []byte) error) *Validator[T, N] {
	return &Validator[T, N]{symbol: symbol{name: inner.Name()}, inner: inner, validate: validate}
}

func (p *Validator[T, N]) check(children []*parse.ASTNode[N], code *parse.Code, pointer int) error {
	err := p.validate(children, code.Value)
	if err == nil {
		return nil
	}
	var val *parse.ValidationError
	if errors.As(err, &val) {
		return val
	}
	if len(children) > 0 {
		pointer = children[0].Start
	}
	return &parse.ValidationError{Position: pointer, Message: err.Error()}
}

func (p *Validator[T, N]) ParseFiltered(ctx *parse.Context[T, N], index parse.FltrPtr) (parse.SuccessData[parse.FltrPtr, N], error) {
	data, err := ctx.Parse(p.inner, index)
	if err != nil {
		return parse.SuccessData[parse.FltrPtr, N]{}, err
	}
	if err := p.check(data.Children, ctx.Code, ctx.Stream.At(index).Start); err != nil {
		return parse.SuccessData[parse.FltrPtr, N]{}, err
	}
	return data, nil
}

func (p *Validator[T, N]) ParseRaw(ctx *parse.Context[T, N], index parse.StreamPtr) (parse.SuccessData[parse.StreamPtr, N], error) {
	data, err := ctx.ParseRaw(p.inner, index)
	if err != nil {
		return parse.SuccessData[parse.StreamPtr, N]{}, err
	}
	if err := p.check(data.Children, ctx.Code, ctx.Stream.Raw(index).Start); err != nil {
		return parse.SuccessData[parse.StreamPtr, N]{}, err
	}
	return data, nil
}

func (p *Validator[T, N]) ParseBytes(ctx *parse.Context[T, N], pointer int) (parse.SuccessData[int, N], error) {
	data, err := ctx.ParseBytes(p.inner, pointer)
	if err != nil {
		return parse.SuccessData[int, N]{}, err
	}
	if err := p.check(data.Children, ctx.Code, pointer); err != nil {
		return parse.SuccessData[int, N]{}, err
	}
	return data, nil
}

func (p *Validator[T, N]) WriteGrammar(w io.Writer, visited map[string]bool) {
	p.inner.WriteGrammar(w, visited)
}
