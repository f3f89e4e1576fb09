package domain

import "testing"

func TestSetTopic(t *testing.T) {
	c := &ConversationContext{}

	c.SetTopic("file")
	if c.Topic != "file" || c.FollowUps != 0 {
		t.Fatalf("context = %+v, want topic file with zero follow-ups", c)
	}

	c.SetTopic("file")
	c.SetTopic("file")
	if c.FollowUps != 2 {
		t.Errorf("follow-ups = %d, want 2 after repeated topic", c.FollowUps)
	}

	c.SetTopic("git")
	if c.Topic != "git" || c.FollowUps != 0 {
		t.Errorf("context = %+v, want counter reset on topic change", c)
	}

	c.SetTopic("")
	if c.Topic != "git" {
		t.Errorf("topic = %q, empty topic must not overwrite", c.Topic)
	}
}

func TestRiskRank(t *testing.T) {
	if !(RiskLow.Rank() < RiskMedium.Rank() && RiskMedium.Rank() < RiskHigh.Rank()) {
		t.Errorf("risk ranks not ordered: %d %d %d", RiskLow.Rank(), RiskMedium.Rank(), RiskHigh.Rank())
	}
}
