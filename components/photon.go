package components

import (
	"github.com/yohamta/donburi"

	"github.com/lunarbyte/hopper/photon"
)

// PhotonData wraps the session-wide particle system. One entity carries it;
// the generation counter inside survives level resets.
type PhotonData struct {
	*photon.System
}

var Photon = donburi.NewComponentType[PhotonData]()
