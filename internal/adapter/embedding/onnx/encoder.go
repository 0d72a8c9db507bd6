// Package onnx runs a sentence-transformer model exported to ONNX and turns
// text into L2-normalized mean-pooled embeddings.
package onnx

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
	"github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/pretrained"
)

// Config describes the model files and runtime library.
type Config struct {
	// OrtLibrary is the onnxruntime shared library. Empty uses the
	// platform default search path.
	OrtLibrary    string
	ModelPath     string
	TokenizerPath string
	MaxSeqLen     int
	Dimension     int
}

var (
	inputNames  = []string{"input_ids", "attention_mask", "token_type_ids"}
	outputNames = []string{"last_hidden_state"}
)

// ErrClosed is returned by Embed after Close.
var ErrClosed = errors.New("onnx: encoder is closed")

// Encoder is safe for concurrent use; inference is serialized.
type Encoder struct {
	cfg     Config
	tk      *tokenizer.Tokenizer
	session *ort.DynamicAdvancedSession

	mu     sync.Mutex
	closed bool
}

// New initializes the onnxruntime environment, loads the tokenizer and
// opens an inference session.
func New(cfg Config) (*Encoder, error) {
	if cfg.MaxSeqLen <= 0 || cfg.Dimension <= 0 {
		return nil, fmt.Errorf("onnx: max_seq_len and dimension must be positive")
	}

	tk, err := pretrained.FromFile(cfg.TokenizerPath)
	if err != nil {
		return nil, fmt.Errorf("onnx: load tokenizer %s: %w", cfg.TokenizerPath, err)
	}

	if !ort.IsInitialized() {
		if cfg.OrtLibrary != "" {
			ort.SetSharedLibraryPath(cfg.OrtLibrary)
		}
		if err := ort.InitializeEnvironment(); err != nil {
			return nil, fmt.Errorf("onnx: initialize runtime: %w", err)
		}
	}

	session, err := ort.NewDynamicAdvancedSession(cfg.ModelPath, inputNames, outputNames, nil)
	if err != nil {
		_ = ort.DestroyEnvironment()
		return nil, fmt.Errorf("onnx: open session %s: %w", cfg.ModelPath, err)
	}

	return &Encoder{cfg: cfg, tk: tk, session: session}, nil
}

// ModelID identifies the loaded model.
func (e *Encoder) ModelID() string {
	return filepath.Base(filepath.Dir(e.cfg.ModelPath))
}

// Embed returns the embedding of text.
func (e *Encoder) Embed(ctx context.Context, text string) ([]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	enc, err := e.tk.EncodeSingle(PrepareText(text), true)
	if err != nil {
		return nil, fmt.Errorf("onnx: tokenize: %w", err)
	}
	ids, mask, types := truncate(enc.Ids, enc.AttentionMask, enc.TypeIds, e.cfg.MaxSeqLen)
	if len(ids) == 0 {
		return nil, fmt.Errorf("onnx: tokenize: empty encoding")
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil, ErrClosed
	}

	hidden, err := e.run(ids, mask, types)
	if err != nil {
		return nil, err
	}

	vec := meanPool(hidden, mask, e.cfg.Dimension)
	l2Normalize(vec)
	return vec, nil
}

func (e *Encoder) run(ids, mask, types []int64) ([]float32, error) {
	seqLen := int64(len(ids))
	shape := ort.NewShape(1, seqLen)

	idsT, err := ort.NewTensor(shape, ids)
	if err != nil {
		return nil, fmt.Errorf("onnx: input_ids tensor: %w", err)
	}
	defer idsT.Destroy()

	maskT, err := ort.NewTensor(shape, mask)
	if err != nil {
		return nil, fmt.Errorf("onnx: attention_mask tensor: %w", err)
	}
	defer maskT.Destroy()

	typesT, err := ort.NewTensor(shape, types)
	if err != nil {
		return nil, fmt.Errorf("onnx: token_type_ids tensor: %w", err)
	}
	defer typesT.Destroy()

	out, err := ort.NewEmptyTensor[float32](ort.NewShape(1, seqLen, int64(e.cfg.Dimension)))
	if err != nil {
		return nil, fmt.Errorf("onnx: output tensor: %w", err)
	}
	defer out.Destroy()

	if err := e.session.Run([]ort.Value{idsT, maskT, typesT}, []ort.Value{out}); err != nil {
		return nil, fmt.Errorf("onnx: run: %w", err)
	}

	data := out.GetData()
	hidden := make([]float32, len(data))
	copy(hidden, data)
	return hidden, nil
}

// Close releases the session and the runtime environment. Safe to call twice.
func (e *Encoder) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil
	}
	e.closed = true

	var errs []error
	if err := e.session.Destroy(); err != nil {
		errs = append(errs, fmt.Errorf("onnx: destroy session: %w", err))
	}
	if err := ort.DestroyEnvironment(); err != nil {
		errs = append(errs, fmt.Errorf("onnx: destroy environment: %w", err))
	}
	return errors.Join(errs...)
}
