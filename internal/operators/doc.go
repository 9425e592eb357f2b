// Package operators is the operation registry that binds the logit kernels
// to a host execution engine.
//
// An operation is declared once with an OpDef: its input and output names,
// the element types it accepts, a shape function and an optional gradient
// operation. Kernels are registered per (operation, element type). Before a
// kernel is built, the registry rejects element types outside the
// definition's constraint and runs shape inference on the input shapes.
//
// Registered operations:
//   - Logit: y = log(x / (1 - x)), shape unchanged, gradient LogitGrad
//   - LogitGrad: dz_dx = dz_dy / (x * (1 - x)), shape merged from x and dz_dy
package operators
