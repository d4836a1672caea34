package component

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

type TilemapTag struct{}

var TilemapTagComponent = NewComponent[TilemapTag]()
