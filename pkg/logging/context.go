package logging

import "context"

type detailsKey struct{}

// ContextWith returns a copy of ctx that carries the given details on top of the ones ctx already has.
// Later details win when keys collide.
func ContextWith(ctx context.Context, ds ...Detail) context.Context {
	if len(ds) == 0 {
		return ctx
	}
	prev := detailsFrom(ctx)
	all := make([]Detail, 0, len(prev)+len(ds))
	all = append(append(all, prev...), ds...)
	return context.WithValue(ctx, detailsKey{}, all)
}

func detailsFrom(ctx context.Context) []Detail {
	if ctx == nil {
		return nil
	}
	ds, _ := ctx.Value(detailsKey{}).([]Detail)
	return ds
}
