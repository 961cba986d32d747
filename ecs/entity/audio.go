package entity

import (
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/milk9111/flappyshooter/ecs/component"
	"github.com/milk9111/flappyshooter/prefabs"
)

func buildAudioComponent(audioSpecs []prefabs.AudioSpec, sounds map[string]*audio.Player, master float64) *component.Audio {
	n := len(audioSpecs)

	names := make([]string, 0, n)
	players := make([]component.Cue, 0, n)
	volume := make([]float64, 0, n)
	play := make([]bool, 0, n)

	for _, clip := range audioSpecs {
		var cue component.Cue
		if p := sounds[clip.Name]; p != nil {
			cue = p
		}
		names = append(names, clip.Name)
		players = append(players, cue)
		volume = append(volume, clip.Volume*master)
		play = append(play, false)
	}

	return &component.Audio{
		Names:   names,
		Players: players,
		Volume:  volume,
		Play:    play,
	}
}
