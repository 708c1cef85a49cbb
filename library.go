package prism

// Library represents a collection of Materials, Textures and Lights, as loaded from a glTF file or a preset file,
// or put together in code.
type Library struct {
	Materials map[string]IMaterial // A Map of Materials to their names
	Textures  map[string]*Texture  // A Map of Textures to their names
	Lights    map[string]ILight    // A Map of Lights to their names
}

// NewLibrary creates a new Library.
func NewLibrary() *Library {
	return &Library{
		Materials: map[string]IMaterial{},
		Textures:  map[string]*Texture{},
		Lights:    map[string]ILight{},
	}
}

// AddMaterial adds the Material to the Library under its name, replacing any Material of the same name.
// The Material's Library is set to this one.
func (lib *Library) AddMaterial(material IMaterial) {
	base := material.Base()
	base.library = lib
	lib.Materials[base.Name] = material
}

// FindMaterial returns the Material with the given name, or nil if there isn't one.
func (lib *Library) FindMaterial(name string) IMaterial {
	return lib.Materials[name]
}

// FindMaterialByUUID returns the Material with the given uuid, or nil if there isn't one.
func (lib *Library) FindMaterialByUUID(uuid string) IMaterial {
	for _, m := range lib.Materials {
		if m.Base().UUID() == uuid {
			return m
		}
	}
	return nil
}

// MaterialNames returns the names of the Library's Materials, sorted.
func (lib *Library) MaterialNames() []string {
	return sortedKeys(lib.Materials)
}

// AddTexture adds the Texture to the Library under its name.
func (lib *Library) AddTexture(texture *Texture) {
	lib.Textures[texture.Name] = texture
}

// FindTexture returns the Texture with the given name, or nil if there isn't one.
func (lib *Library) FindTexture(name string) *Texture {
	return lib.Textures[name]
}

// AddLight adds the Light to the Library under its name. The Light's Library is set to this one.
func (lib *Library) AddLight(light ILight) {
	light.setLibrary(lib)
	lib.Lights[light.Name()] = light
}

// FindLight returns the Light with the given name, or nil if there isn't one.
func (lib *Library) FindLight(name string) ILight {
	return lib.Lights[name]
}

// Dispose disposes every Material and Texture in the Library.
func (lib *Library) Dispose() {
	for _, name := range lib.MaterialNames() {
		lib.Materials[name].Dispose()
	}
	for _, tex := range lib.Textures {
		tex.Dispose()
	}
}
