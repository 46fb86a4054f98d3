package plugin

import (
	"context"
	"fmt"
	"os"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"

	"github.com/vitalslab/vitals-cli/internal/fatigue"
)

// Engine hosts a WASM recovery-curve plugin. The module must export
//
//	decay_new(half_life_hours f64) -> u32
//	decay_weight(handle u32, age_hours f64) -> f64
//	decay_free(handle u32)
//
// decay_weight returns the residual load fraction for a workout of the
// given age. Values are clamped to (0, 1] by the fatigue model.
type Engine struct {
	runtime wazero.Runtime
	module  api.Module
	ptr     uint32 // decay curve handle
}

// NewEngine loads a recovery-curve plugin from a wasm file
func NewEngine(ctx context.Context, wasmPath string, halfLifeHours float64) (*Engine, error) {
	wasmBytes, err := os.ReadFile(wasmPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read wasm file: %w", err)
	}

	r := wazero.NewRuntime(ctx)

	// Instantiate WASI
	wasi_snapshot_preview1.MustInstantiate(ctx, r)

	// Compile and instantiate the module
	compiled, err := r.CompileModule(ctx, wasmBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to compile wasm module: %w", err)
	}

	mod, err := r.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithStdout(os.Stdout).WithStderr(os.Stderr))
	if err != nil {
		return nil, fmt.Errorf("failed to instantiate wasm module: %w", err)
	}

	// Create decay curve
	fn := mod.ExportedFunction("decay_new")
	if fn == nil {
		return nil, fmt.Errorf("decay_new not exported")
	}

	results, err := fn.Call(ctx, api.EncodeF64(halfLifeHours))
	if err != nil {
		return nil, fmt.Errorf("failed to create decay curve: %w", err)
	}

	return &Engine{
		runtime: r,
		module:  mod,
		ptr:     uint32(results[0]),
	}, nil
}

// Close frees the plugin handle and shuts down the runtime
func (e *Engine) Close(ctx context.Context) error {
	if e.ptr != 0 {
		fn := e.module.ExportedFunction("decay_free")
		if fn != nil {
			_, _ = fn.Call(ctx, uint64(e.ptr))
		}
	}
	return e.runtime.Close(ctx)
}

// Weight evaluates the plugin's decay curve at the given workout age
func (e *Engine) Weight(ctx context.Context, ageHours float64) (float64, error) {
	fn := e.module.ExportedFunction("decay_weight")
	if fn == nil {
		return 0, fmt.Errorf("decay_weight not exported")
	}

	results, err := fn.Call(ctx, uint64(e.ptr), api.EncodeF64(ageHours))
	if err != nil {
		return 0, fmt.Errorf("failed to call decay_weight: %w", err)
	}

	return api.DecodeF64(results[0]), nil
}

// WeightFunc adapts the plugin to the fatigue model. Plugin call errors
// fall back to zero weight, so a broken plugin cannot inflate scores.
func (e *Engine) WeightFunc(ctx context.Context) fatigue.WeightFunc {
	return func(ageHours float64) float64 {
		w, err := e.Weight(ctx, ageHours)
		if err != nil {
			return 0
		}
		return w
	}
}
