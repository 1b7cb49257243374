package upstream

import (
	"context"
	"strconv"

	"retroboard/internal/core/daterange"
)

// SignupCounts fetches the daily signup series for the range
func (c *Client) SignupCounts(ctx context.Context, rng daterange.Range) ([]SignupRow, error) {
	var out []SignupRow
	if err := c.getJSON(ctx, "/admin/member/signup-count", rng.Params(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// StayTimes fetches the writing stay-time histogram for the range
func (c *Client) StayTimes(ctx context.Context, rng daterange.Range) ([]StayTimeRow, error) {
	var out []StayTimeRow
	if err := c.getJSON(ctx, "/admin/retrospect/stay-time", rng.Params(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RetrospectCompletionRate fetches the completion fraction for the range
func (c *Client) RetrospectCompletionRate(ctx context.Context, rng daterange.Range) (CompletionRate, error) {
	var out CompletionRate
	if err := c.getJSON(ctx, "/admin/retrospect/completion-rate", rng.Params(), &out); err != nil {
		return CompletionRate{}, err
	}
	return out, nil
}

// MeaningfulCohort fetches the filtered retention cohort for the range and criteria
func (c *Client) MeaningfulCohort(
	ctx context.Context,
	rng daterange.Range,
	minCount, minLength int,
) (MeaningfulResult, error) {
	params := rng.Params()
	params["retrospectCount"] = strconv.Itoa(minCount)
	params["retrospectLength"] = strconv.Itoa(minLength)

	var out MeaningfulResult
	if err := c.getJSON(ctx, "/admin/retrospect/meaningful", params, &out); err != nil {
		return MeaningfulResult{}, err
	}
	return out, nil
}

// TemplateChoiceCounts fetches the top templates picked through one choice flow
func (c *Client) TemplateChoiceCounts(
	ctx context.Context,
	rng daterange.Range,
	choice ChoiceType,
	page, size int,
) ([]TemplateCountRow, error) {
	params := rng.Params()
	params["choiceType"] = string(choice)
	params["page"] = strconv.Itoa(page)
	params["size"] = strconv.Itoa(size)

	var out []TemplateCountRow
	if err := c.getJSON(ctx, "/admin/template/choice-count", params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TemplateUsage fetches combined template usage counts for the range
func (c *Client) TemplateUsage(ctx context.Context, rng daterange.Range) ([]TemplateCountRow, error) {
	var out []TemplateCountRow
	if err := c.getJSON(ctx, "/admin/template/usage", rng.Params(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SpaceMemberCounts fetches per-member space composition rows for the range
func (c *Client) SpaceMemberCounts(ctx context.Context, rng daterange.Range) ([]SpaceMemberRow, error) {
	var out []SpaceMemberRow
	if err := c.getJSON(ctx, "/admin/space/member-count", rng.Params(), &out); err != nil {
		return nil, err
	}
	return out, nil
}
