package orchestrator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"travel-assistant/internal/agent/specialist"
	"travel-assistant/internal/extractor"
	"travel-assistant/internal/memory"
	"travel-assistant/internal/model"
	"travel-assistant/internal/resolver"
	"travel-assistant/internal/router"
	pkgLog "travel-assistant/pkg/log"
	"travel-assistant/pkg/textnorm"
)

// ProcessQuery answers query within the session sessionID. An empty
// sessionID starts a new session; the reply carries the assigned ID.
// Specialist failures are answered with MsgInternalError and still
// recorded in memory.
func (o *Orchestrator) ProcessQuery(ctx context.Context, sessionID, query string) (Reply, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Reply{SessionID: sessionID, Text: MsgEmptyQuery}, ErrEmptyQuery
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	ctx = pkgLog.WithSessionID(ctx, sessionID)
	started := time.Now()

	unlock := o.locks.lock(sessionID)
	defer unlock()

	session, err := memory.GetOrCreate(ctx, o.store, sessionID)
	if err != nil {
		o.l.Errorf(ctx, "%s: %s: %v", LogPrefixProcessQuery, ErrMsgLoadSession, err)
		return Reply{SessionID: sessionID}, fmt.Errorf("%s: %s: %w", LogPrefixProcessQuery, ErrMsgLoadSession, err)
	}

	entities := o.extractor.Extract(query)
	classified := o.classify(ctx, query)
	bundle := session.RelevantContext(query, classified.Intent)

	resolved := resolver.Resolve(entities, classified.Intent, bundle, resolver.DefaultsFor(classified.Intent))
	resolved.Query = query

	adults, children := o.extractor.DetectGuests(query)
	req := specialist.Request{
		Resolved:    resolved,
		Quantity:    o.extractor.DetectQuantity(query),
		Adults:      adults,
		Children:    children,
		TimeContext: buildTimeContext(o.now(), o.loc),
	}

	spec := o.specialists[classified.Intent]
	o.l.Infof(ctx, "%s: "+LogMsgDispatch, LogPrefixProcessQuery, spec.Name(), resolved.Destination, resolved.TripLength, resolved.StartDate)

	reply := Reply{
		SessionID:   sessionID,
		Intent:      classified.Intent,
		Confidence:  classified.Confidence,
		Agent:       spec.Name(),
		Destination: resolved.Destination,
	}

	result, err := spec.Handle(ctx, req)
	switch {
	case err != nil:
		o.l.Errorf(ctx, "%s: "+LogMsgSpecialistError, LogPrefixProcessQuery, spec.Name(), err)
		o.metrics.SpecialistFailed(spec.Name())
		reply.Text = MsgInternalError
		reply.Degraded = true
	case result.Clarification:
		reply.Text = result.Text
	default:
		if result.Degraded {
			o.l.Warnf(ctx, "%s: "+LogMsgDegraded, LogPrefixProcessQuery, spec.Name())
			o.metrics.SpecialistFailed(spec.Name())
		}
		reply.Text = withHeader(classified.Intent, resolved.Destination, result.Text)
		reply.Degraded = result.Degraded
	}

	session.AddInteraction(query, classified.Intent, spec.Name(), reply.Text, extractor.Info(entities))
	if err := o.store.Save(ctx, sessionID, session); err != nil {
		o.l.Errorf(ctx, "%s: %s: %v", LogPrefixProcessQuery, ErrMsgSaveSession, err)
	}
	o.reportSessions()

	o.metrics.ObserveQuery(string(classified.Intent), time.Since(started))
	return reply, nil
}

// classify never fails: a router error falls back to the keyword rules.
func (o *Orchestrator) classify(ctx context.Context, query string) router.Output {
	out, err := o.router.Classify(ctx, query)
	if err != nil || !out.Intent.IsValid() {
		o.l.Warnf(ctx, "%s: "+LogMsgRouterError, LogPrefixProcessQuery, err)
		out, _ = router.New(o.l).Classify(ctx, query)
	}
	o.l.Debugf(ctx, "%s: "+LogMsgClassified, LogPrefixProcessQuery, out.Intent, out.Confidence, out.Reasoning)
	return out
}

func withHeader(intent model.Intent, destination, text string) string {
	header := Header(intent, destination)
	if header == "" {
		return text
	}
	return header + "\n\n" + text
}

// Header returns the reply header for intent.
func Header(intent model.Intent, destination string) string {
	dest := strings.ToUpper(textnorm.Title(destination))
	switch intent {
	case model.IntentEat:
		return fmt.Sprintf(HeaderEat, dest)
	case model.IntentVisit:
		return fmt.Sprintf(HeaderVisit, dest)
	case model.IntentPlan:
		return HeaderPlan
	case model.IntentBook:
		return HeaderBook
	case model.IntentWeather:
		return fmt.Sprintf(HeaderWeather, dest)
	case model.IntentOther:
		return HeaderOther
	}
	return ""
}
