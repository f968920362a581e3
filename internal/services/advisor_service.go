package services

import (
	"context"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/ai"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/logger"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/services/dto"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperrors"
)

// degradedAdvice is what the advisor says when no language model is
// configured. Static but honest about it via the Degraded flag.
const degradedAdvice = `The AI career advisor is not available right now, but here are proven basics:

1. Keep your profile and resume complete and current; recruiters filter on skills and location.
2. Tailor each application: mirror the top three requirements of the posting in your cover letter.
3. Set up job alerts for the roles you want so you apply within the first days of posting.
4. Prepare concrete stories (situation, action, result) for your main achievements before interviews.
5. Research salary ranges for your role and region before negotiating.`

type AdvisorService interface {
	CareerAdvice(ctx context.Context, req *dto.CareerAdviceRequest) (*dto.CareerAdviceResponse, error)
}

type advisorService struct {
	client *ai.Client
}

func NewAdvisorService(client *ai.Client) AdvisorService {
	return &advisorService{client: client}
}

func (s *advisorService) CareerAdvice(ctx context.Context, req *dto.CareerAdviceRequest) (*dto.CareerAdviceResponse, error) {
	if !s.client.Configured() {
		return &dto.CareerAdviceResponse{Reply: degradedAdvice, Degraded: true}, nil
	}

	history := make([]ai.Turn, 0, len(req.History))
	for _, msg := range req.History {
		history = append(history, ai.Turn{Role: msg.Role, Content: msg.Content})
	}

	reply, err := s.client.CareerAdvice(ctx, req.Message, history)
	if err != nil {
		logger.CtxWithError(ctx, "Career advice request failed", err)
		return nil, apperrors.ErrAIUnavailable
	}
	return &dto.CareerAdviceResponse{Reply: reply}, nil
}
