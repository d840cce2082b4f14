package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a balance file and merges it over the defaults. Zero
// values in the file keep the default, so a partial file only
// overrides what it names.
func Load(path string) (Balance, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Balance{}, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Balance{}, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (b *Balance) applyDefaults() {
	def := Default()
	if b.QuestSlots <= 0 {
		b.QuestSlots = def.QuestSlots
	}
	if b.RewardMax <= 0 {
		b.RewardMax = def.RewardMax
	}
	if b.RewardMin <= 0 {
		b.RewardMin = def.RewardMin
	}
	if b.BidMin <= 0 {
		b.BidMin = def.BidMin
	}
	if b.BidMax <= 0 {
		b.BidMax = def.BidMax
	}
	if b.RecruitPoolSize <= 0 {
		b.RecruitPoolSize = def.RecruitPoolSize
	}
	if b.JournalPerEntity <= 0 {
		b.JournalPerEntity = def.JournalPerEntity
	}
	if b.JournalFeed <= 0 {
		b.JournalFeed = def.JournalFeed
	}
	if len(b.Stances) == 0 {
		b.Stances = def.Stances
	}
	for _, key := range []string{StanceMeticulous, StanceOnTime} {
		if _, ok := b.Stances[key]; !ok {
			b.Stances[key] = def.Stances[key]
		}
	}
}
