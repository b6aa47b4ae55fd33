package api

import (
	"sync"
	"time"

	"github.com/alex-pricope/festival-results/contest"
	"github.com/alex-pricope/festival-results/logging"
	"github.com/alex-pricope/festival-results/storage"
	"github.com/spf13/viper"
)

type Config struct {
	StorageConfig
	ServerConfig
	ScoringConfig
	RealtimeConfig
	LoggingConfig
}

type StorageConfig struct {
	Driver string
	Tables storage.TableNames
}

type ServerConfig struct {
	Port       int
	AdminToken string
	JuryToken  string
	TeamToken  string
}

type ScoringConfig struct {
	Rules contest.ScoringRules
}

type RealtimeConfig struct {
	SubscriberBuffer int
	QuiescenceWindow time.Duration
}

type LoggingConfig struct {
	Level string
	JSON  bool
}

var settingsOnce sync.Once

func ReadConfig() *Config {
	var conf = &Config{
		StorageConfig: StorageConfig{
			Driver: getStringOrDefault("storage.driver", "dynamo"),
			Tables: storage.TableNames{
				Programs:      getStringOrDefault("storage.TableNamePrograms", "Programs"),
				Teams:         getStringOrDefault("storage.TableNameTeams", "Teams"),
				Students:      getStringOrDefault("storage.TableNameStudents", "Students"),
				Registrations: getStringOrDefault("storage.TableNameRegistrations", "Registrations"),
				Results:       getStringOrDefault("storage.TableNameResults", "Results"),
				Publications:  getStringOrDefault("storage.TableNamePublications", "Publications"),
				Replacements:  getStringOrDefault("storage.TableNameReplacements", "Replacements"),
				Assignments:   getStringOrDefault("storage.TableNameAssignments", "Assignments"),
				Settings:      getStringOrDefault("storage.TableNameSettings", "Settings"),
			},
		},
		ServerConfig: ServerConfig{
			Port:       getIntOrDefault("server.port", 8080),
			AdminToken: getString("ADMIN_TOKEN"),
			JuryToken:  getStringOrDefault("JURY_TOKEN", ""),
			TeamToken:  getStringOrDefault("TEAM_TOKEN", ""),
		},
		ScoringConfig: ScoringConfig{
			Rules: readScoringRules(),
		},
		RealtimeConfig: RealtimeConfig{
			SubscriberBuffer: getIntOrDefault("realtime.subscriberBuffer", 16),
			QuiescenceWindow: getDurationOrDefault("realtime.quiescenceWindow", 500*time.Millisecond),
		},
		LoggingConfig: LoggingConfig{
			Level: getStringOrDefault("logging.level", "info"),
			JSON:  getBoolOrDefault("logging.json", false),
		},
	}

	settingsOnce.Do(func() {
		logging.Log.Print("Reading settings!")
	})

	return conf
}

// readScoringRules overlays scoring.* keys on the default table.
func readScoringRules() contest.ScoringRules {
	rules := contest.DefaultScoringRules()
	for section, positions := range map[storage.Section]string{
		storage.SectionSingle: "scoring.single",
		storage.SectionGroup:  "scoring.group",
	} {
		rules.Placement[section][1] = getIntOrDefault(positions+".first", rules.Placement[section][1])
		rules.Placement[section][2] = getIntOrDefault(positions+".second", rules.Placement[section][2])
		rules.Placement[section][3] = getIntOrDefault(positions+".third", rules.Placement[section][3])
	}
	for grade, key := range map[storage.Grade]string{
		storage.GradeA: "scoring.grade.a",
		storage.GradeB: "scoring.grade.b",
		storage.GradeC: "scoring.grade.c",
	} {
		rules.GradeBonus[grade] = getIntOrDefault(key, rules.GradeBonus[grade])
	}
	return rules
}

func getString(name string) string {
	if viper.IsSet(name) {
		v := viper.GetString(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Fatalf("required environment variable '%s' is missing", name)
	return ""
}

func getIntOrDefault(name string, def int) int {
	if viper.IsSet(name) {
		v := viper.GetInt(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

func getBoolOrDefault(name string, def bool) bool {
	if viper.IsSet(name) {
		v := viper.GetBool(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

func getStringOrDefault(name string, def string) string {
	if viper.IsSet(name) {
		v := viper.GetString(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

func getDurationOrDefault(name string, def time.Duration) time.Duration {
	if viper.IsSet(name) {
		v := viper.GetDuration(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}
