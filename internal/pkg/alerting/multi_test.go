package alerting

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMultiChannelAlerter_SendsToAllChannels(t *testing.T) {
	tg := &recordingAlerter{}
	wh := &recordingAlerter{}
	multi := NewMultiChannelAlerter(
		map[string]Alerter{ChannelTelegram: tg, ChannelWebhook: wh},
		nil, nil, &testLogger{},
	)

	if err := multi.Send(context.Background(), testAlert()); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if len(tg.sent()) != 1 || len(wh.sent()) != 1 {
		t.Errorf("telegram=%d webhook=%d, want 1 and 1", len(tg.sent()), len(wh.sent()))
	}
}

func TestMultiChannelAlerter_RulesPerChannel(t *testing.T) {
	tg := &recordingAlerter{}
	wh := &recordingAlerter{}
	rules := NewRulesEngine(RulesConfig{
		Channels: map[string]ChannelRulesConfig{
			ChannelTelegram: {MinSeverity: "CRITICAL"},
		},
	})
	multi := NewMultiChannelAlerter(map[string]Alerter{ChannelTelegram: tg, ChannelWebhook: wh}, rules, nil, &testLogger{})

	alert := testAlert()
	alert.Severity = SeverityWarning
	if err := multi.Send(context.Background(), alert); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	if len(tg.sent()) != 0 {
		t.Errorf("telegram received %d alerts, want 0", len(tg.sent()))
	}
	if len(wh.sent()) != 1 {
		t.Errorf("webhook received %d alerts, want 1", len(wh.sent()))
	}
}

func TestMultiChannelAlerter_RateLimitedOnceForAllChannels(t *testing.T) {
	tg := &recordingAlerter{}
	wh := &recordingAlerter{}
	multi := NewMultiChannelAlerter(
		map[string]Alerter{ChannelTelegram: tg, ChannelWebhook: wh},
		nil, NewRateLimiter(time.Hour), &testLogger{},
	)

	for i := 0; i < 3; i++ {
		if err := multi.Send(context.Background(), testAlert()); err != nil {
			t.Fatalf("Send() error = %v", err)
		}
	}

	if len(tg.sent()) != 1 || len(wh.sent()) != 1 {
		t.Errorf("telegram=%d webhook=%d, want 1 and 1", len(tg.sent()), len(wh.sent()))
	}
}

func TestMultiChannelAlerter_AllChannelsFail(t *testing.T) {
	multi := NewMultiChannelAlerter(map[string]Alerter{
		ChannelTelegram: &recordingAlerter{err: ErrDeliveryFailed},
		ChannelWebhook:  &recordingAlerter{err: ErrDeliveryFailed},
	}, nil, nil, &testLogger{})

	err := multi.Send(context.Background(), testAlert())
	if !errors.Is(err, ErrDeliveryFailed) {
		t.Errorf("Send() error = %v, want ErrDeliveryFailed", err)
	}
}

func TestMultiChannelAlerter_PartialFailure(t *testing.T) {
	logger := &testLogger{}
	multi := NewMultiChannelAlerter(map[string]Alerter{
		ChannelTelegram: &recordingAlerter{err: ErrDeliveryFailed},
		ChannelWebhook:  &recordingAlerter{},
	}, nil, nil, logger)

	if err := multi.Send(context.Background(), testAlert()); err != nil {
		t.Errorf("Send() error = %v, want nil on partial delivery", err)
	}
	if len(logger.warnings()) != 1 {
		t.Errorf("warnings = %v, want one", logger.warnings())
	}
}

func TestMultiChannelAlerter_CancelledContext(t *testing.T) {
	wh := &recordingAlerter{}
	multi := NewMultiChannelAlerter(map[string]Alerter{ChannelWebhook: wh}, nil, nil, &testLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := multi.Send(ctx, testAlert()); err != nil {
		t.Errorf("Send() error = %v, want nil", err)
	}
	if len(wh.sent()) != 0 {
		t.Errorf("webhook received %d alerts after cancel, want 0", len(wh.sent()))
	}
}

func TestMultiChannelAlerter_DeterministicOrder(t *testing.T) {
	multi := NewMultiChannelAlerter(map[string]Alerter{
		"zeta":  &recordingAlerter{},
		"alpha": &recordingAlerter{},
		"mid":   &recordingAlerter{},
	}, nil, nil, &testLogger{})

	want := []string{"alpha", "mid", "zeta"}
	for i, name := range want {
		if multi.channelNames[i] != name {
			t.Errorf("channelNames[%d] = %q, want %q", i, multi.channelNames[i], name)
		}
	}
}
