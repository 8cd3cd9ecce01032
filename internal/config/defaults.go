package config

import (
	_ "embed"
)

//go:embed defaults/blindrace.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded configuration. It mirrors the embedded
// YAML and is used when that cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Timing: TimingConfig{
			TickRate:           60,
			ReactionWindow:     0.7,
			Debounce:           0.3,
			BlockingCueTimeout: 10,
			Warmup:             2,
			SpeakerTestGap:     1.5,
		},
		Audio: AudioConfig{
			SampleRate:     44100,
			BufferMs:       100,
			MasterVolume:   1.0,
			MusicVolume:    0.7,
			PanAttenuation: 0.1,
			Files: map[string][]string{
				"intro":        {"inicio_jogo.mp3"},
				"instructions": {"instrucoes.mp3"},
				"music":        {"musica_fundo.mp3"},
				"outro":        {"fim_de_jogo.mp3"},
				"collision":    {"colisao.wav"},
				"dodged":       {"desviou.wav"},
				"center":       {"obstaculo_centro.wav"},
				"above":        {"obstaculo_cima.wav"},
				"bonus":        {"bonus_caixa.wav"},
				"life":         {"vida.wav"},
				"menu":         {"menu_principal.wav"},
				"obstacle":     {"obstaculo_1.wav", "obstaculo_2.wav", "obstaculo_3.wav", "obstaculo_4.wav"},
			},
		},
		Speech: SpeechConfig{
			Enabled:     true,
			WaitTimeout: 10,
		},
		Difficulty: DifficultyConfig{
			Profiles: DefaultProfiles(),
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
