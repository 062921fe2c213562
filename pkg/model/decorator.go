package model

// Decorator enriches a form model with presentation overrides after the
// canonical structure has been built.
type Decorator interface {
	Decorate(*FormModel) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(*FormModel) error

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(form *FormModel) error {
	return fn(form)
}

// Decorate returns a copy of form with every decorator applied in order.
// The input model is never modified.
func Decorate(form FormModel, decorators ...Decorator) (FormModel, error) {
	out := form.Clone()
	for _, decorator := range decorators {
		if decorator == nil {
			continue
		}
		if err := decorator.Decorate(&out); err != nil {
			return FormModel{}, err
		}
	}
	return out, nil
}
