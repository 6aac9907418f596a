package handler

import (
	"context"
	"errors"
	"strings"

	"wordmatch/internal/domain"
	"wordmatch/internal/service"

	"go.uber.org/zap"
)

func isDone(text string) bool {
	switch strings.ToLower(text) {
	case "done", "back", "cancel":
		return true
	}
	return false
}

func (h *Handler) listWords(ctx context.Context) error {
	pairs, err := h.wordService.List(ctx)
	if err != nil {
		return err
	}
	if len(pairs) == 0 {
		h.printf("No word pairs yet. Use 'add' to create some.\n")
		return nil
	}

	width := 0
	for _, p := range pairs {
		width = max(width, displayWidth(p.English))
	}

	var b strings.Builder
	for _, p := range pairs {
		b.WriteString("  ")
		b.WriteString(padRight(p.English, width))
		b.WriteString("  ")
		b.WriteString(p.Chinese)
		b.WriteString("\n")
	}
	h.write(b.String())
	h.printf("%d word pairs.\n", len(pairs))
	return nil
}

// beginAdd starts the add flow. "add english = chinese" saves in one step.
func (h *Handler) beginAdd(ctx context.Context, arg string) error {
	if english, chinese, ok := strings.Cut(arg, "="); ok {
		_, err := h.saveWord(ctx, english, chinese)
		return err
	}

	if arg != "" {
		return h.handleWordInput(ctx, arg)
	}

	h.SetState(&domain.StateData{State: domain.StateWaitingWord})
	h.printf("English word (or 'done' to finish):\n")
	return nil
}

// handleWordInput takes the english side of a new pair
func (h *Handler) handleWordInput(ctx context.Context, text string) error {
	if text == "" {
		h.printf("English word (or 'done' to finish):\n")
		return nil
	}
	if isDone(text) {
		h.ResetState()
		h.showHome(ctx)
		return nil
	}

	h.SetState(&domain.StateData{
		State:       domain.StateWaitingTranslation,
		CurrentWord: text,
	})
	h.printf("Chinese meaning of %q (or 'cancel'):\n", text)
	return nil
}

// handleTranslationInput takes the chinese side and saves the pair
func (h *Handler) handleTranslationInput(ctx context.Context, state *domain.StateData, text string) error {
	if text == "" {
		h.printf("Chinese meaning of %q (or 'cancel'):\n", state.CurrentWord)
		return nil
	}
	if isDone(text) {
		h.SetState(&domain.StateData{State: domain.StateWaitingWord})
		h.printf("Skipped %q. Next English word (or 'done' to finish):\n", state.CurrentWord)
		return nil
	}

	saved, err := h.saveWord(ctx, state.CurrentWord, text)
	if err != nil {
		return err
	}
	if saved {
		// Reset to waiting for next word
		h.SetState(&domain.StateData{State: domain.StateWaitingWord})
		h.printf("Next English word (or 'done' to finish):\n")
	}
	return nil
}

// saveWord stores a pair and reports it. Invalid input is reported, not returned.
func (h *Handler) saveWord(ctx context.Context, english, chinese string) (bool, error) {
	pair, err := h.wordService.Save(ctx, english, chinese)
	if errors.Is(err, service.ErrInvalidWordPair) {
		h.printf("Both the English word and the Chinese meaning are required.\n")
		return false, nil
	}
	if err != nil {
		h.logger.Error("Failed to save word pair",
			zap.Error(err),
			zap.String("english", pair.English),
		)
		return false, err
	}

	h.printf("Saved: %s = %s\n", pair.English, pair.Chinese)
	return true, nil
}

func (h *Handler) beginDelete(arg string) {
	if arg == "" {
		h.printf("Usage: del <english word>\n")
		return
	}

	h.SetState(&domain.StateData{
		State:       domain.StateConfirmDelete,
		CurrentWord: arg,
	})
	h.printf("Delete %q? (y/n)\n", arg)
}

func (h *Handler) handleConfirmDelete(ctx context.Context, state *domain.StateData, text string) error {
	h.ResetState()

	if !isYes(text) {
		h.printf("Kept %q.\n", state.CurrentWord)
		return nil
	}

	if err := h.wordService.Delete(ctx, state.CurrentWord); err != nil {
		h.logger.Error("Failed to delete word pair",
			zap.Error(err),
			zap.String("english", state.CurrentWord),
		)
		return err
	}

	h.logger.Info("Word pair deleted", zap.String("english", state.CurrentWord))
	h.printf("Deleted %q.\n", state.CurrentWord)
	return nil
}
