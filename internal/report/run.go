package report

import (
	"context"
	"fmt"
)

func (uc *implUseCase) Run(ctx context.Context, opt RunOptions) (Output, error) {
	d, err := uc.Build(ctx)
	if err != nil {
		return Output{}, err
	}
	out := Output{Digest: d, HTML: uc.Compose(ctx, d)}

	if opt.SendEmail {
		if uc.mailer == nil {
			return out, ErrNoMailer
		}
		result, err := uc.mailer.Execute(ctx, map[string]any{
			"destinatario": uc.opt.Recipient,
			"assunto":      uc.opt.Subject,
			"corpo_html":   out.HTML,
		})
		if err != nil {
			return out, fmt.Errorf("report.Run: send: %w", err)
		}
		out.Sent = true
		out.Result = result
	}

	if opt.RecordHistory && uc.progress != nil {
		if _, err := uc.progress.RecordHistory(ctx); err != nil {
			return out, fmt.Errorf("report.Run: %w", err)
		}
	}
	return out, nil
}
