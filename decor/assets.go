package decor

// All fragment bodies are drawn in a 200x200 reference space and scaled by
// the compositor. Colors here are intentionally literal: decorations keep
// their own palette even when CSS recolors the QR modules around them.
const refBoxSide = 200.0

const treeFancyBody = `<g>
    <polygon points="45,180 100,120 155,180" fill="#0b6623" stroke="#094d1a" stroke-width="0.5"/>
    <polygon points="55,145 100,90 145,145" fill="#0b6623" stroke="#094d1a" stroke-width="0.5"/>
    <polygon points="65,115 100,60 135,115" fill="#0b6623" stroke="#094d1a" stroke-width="0.5"/>
    <polygon points="100,50 103,59 112,60 105,66 107,75 100,70 93,75 95,66 88,60 97,59" fill="#ffeb3b" stroke="#f9a825" stroke-width="0.8"/>
    <rect x="95" y="180" width="10" height="15" fill="#5d4037" stroke="#3e2723" stroke-width="0.5"/>
    <circle cx="85" cy="135" r="3.5" fill="#b71c1c" stroke="#8b0000" stroke-width="0.5"/>
    <circle cx="115" cy="140" r="3" fill="#e53935" stroke="#b71c1c" stroke-width="0.5"/>
    <circle cx="100" cy="155" r="3.2" fill="#f44336" stroke="#d32f2f" stroke-width="0.5"/>
    <circle cx="75" cy="150" r="2.8" fill="#ffd54a" stroke="#fbc02d" stroke-width="0.5"/>
    <circle cx="125" cy="155" r="2.5" fill="#ffeb3b" stroke="#fdd835" stroke-width="0.5"/>
    <circle cx="95" cy="125" r="2.6" fill="#1976d2" stroke="#0d47a1" stroke-width="0.5"/>
    <circle cx="110" cy="115" r="2.4" fill="#2196f3" stroke="#1565c0" stroke-width="0.5"/>
    <circle cx="70" cy="138" r="1.5" fill="#fff59d" opacity="0.9"/>
    <circle cx="90" cy="145" r="1.5" fill="#ffccbc" opacity="0.9"/>
    <circle cx="110" cy="148" r="1.5" fill="#b3e5fc" opacity="0.9"/>
    <circle cx="130" cy="142" r="1.5" fill="#c5e1a5" opacity="0.9"/>
    <path d="M70,130 Q100,140 130,130" fill="none" stroke="#8bc34a" stroke-width="2" opacity="0.8"/>
    <path d="M60,150 Q100,162 140,150" fill="none" stroke="#7cb342" stroke-width="2.5" opacity="0.8"/>
</g>`

const treePlainBody = `<g>
    <polygon points="50,175 100,125 150,175" fill="#0b6623"/>
    <polygon points="60,145 100,95 140,145" fill="#0b6623"/>
    <polygon points="70,120 100,70 130,120" fill="#0b6623"/>
    <rect x="93" y="175" width="14" height="18" fill="#6d4c41"/>
</g>`

const snowmanBody = `<g>
    <circle cx="100" cy="165" r="32" fill="#fafafa" stroke="#cfd8dc" stroke-width="1.2"/>
    <circle cx="100" cy="115" r="26" fill="#ffffff" stroke="#cfd8dc" stroke-width="1.2"/>
    <circle cx="100" cy="72" r="20" fill="#ffffff" stroke="#cfd8dc" stroke-width="1.2"/>
    <ellipse cx="100" cy="56" rx="26" ry="4.5" fill="#212121"/>
    <rect x="82" y="35" width="36" height="21" fill="#424242" rx="1.5"/>
    <rect x="82" y="48" width="36" height="5" fill="#c62828"/>
    <circle cx="96" cy="50" r="1.8" fill="#c62828"/>
    <circle cx="104" cy="50" r="1.8" fill="#c62828"/>
    <circle cx="92" cy="68" r="2.2" fill="#212121"/>
    <circle cx="108" cy="68" r="2.2" fill="#212121"/>
    <path d="M100,74 L108,76 L100,78 Z" fill="#ff6f00" stroke="#e65100" stroke-width="0.4"/>
    <circle cx="90" cy="82" r="1.3" fill="#212121"/>
    <circle cx="94" cy="84" r="1.3" fill="#212121"/>
    <circle cx="100" cy="85" r="1.3" fill="#212121"/>
    <circle cx="106" cy="84" r="1.3" fill="#212121"/>
    <circle cx="110" cy="82" r="1.3" fill="#212121"/>
    <circle cx="100" cy="105" r="2.8" fill="#212121"/>
    <circle cx="100" cy="120" r="2.8" fill="#212121"/>
    <circle cx="100" cy="135" r="2.8" fill="#212121"/>
    <circle cx="100" cy="150" r="2.8" fill="#212121"/>
    <path d="M75,88 Q100,93 125,88" fill="none" stroke="#1565c0" stroke-width="7" stroke-linecap="round"/>
    <path d="M75,92 Q100,97 125,92" fill="none" stroke="#1976d2" stroke-width="5" stroke-linecap="round"/>
    <rect x="72" y="88" width="7" height="20" fill="#1565c0" rx="1"/>
    <rect x="121" y="88" width="7" height="20" fill="#1976d2" rx="1"/>
    <line x1="73" y1="108" x2="73" y2="112" stroke="#0d47a1" stroke-width="1.5"/>
    <line x1="77" y1="108" x2="77" y2="114" stroke="#0d47a1" stroke-width="1.5"/>
    <line x1="123" y1="108" x2="123" y2="113" stroke="#0d47a1" stroke-width="1.5"/>
    <line x1="127" y1="108" x2="127" y2="111" stroke="#0d47a1" stroke-width="1.5"/>
</g>`

const santaBody = `<g>
    <circle cx="100" cy="105" r="42" fill="#ffccbc"/>
    <path d="M62,82 Q100,45 138,82 L138,90 L62,90 Z" fill="#b71c1c"/>
    <ellipse cx="100" cy="90" rx="38" ry="5.5" fill="#f5f5f5"/>
    <circle cx="100" cy="52" r="7.5" fill="#f5f5f5" stroke="#eeeeee" stroke-width="0.6"/>
    <circle cx="86" cy="100" r="4.5" fill="#424242"/>
    <circle cx="88" cy="98" r="1.5" fill="#ffffff"/>
    <circle cx="114" cy="100" r="4.5" fill="#424242"/>
    <circle cx="116" cy="98" r="1.5" fill="#ffffff"/>
    <ellipse cx="68" cy="110" rx="8" ry="6" fill="#ef9a9a" opacity="0.7"/>
    <ellipse cx="132" cy="110" rx="8" ry="6" fill="#ef9a9a" opacity="0.7"/>
    <ellipse cx="100" cy="108" rx="6" ry="7" fill="#ff8a80"/>
    <ellipse cx="98" cy="106" rx="2" ry="2.5" fill="#ffcdd2" opacity="0.6"/>
    <ellipse cx="82" cy="118" rx="14" ry="7" fill="#fafafa"/>
    <ellipse cx="118" cy="118" rx="14" ry="7" fill="#fafafa"/>
    <path d="M75,118 Q78,121 82,119" fill="none" stroke="#e0e0e0" stroke-width="1"/>
    <path d="M125,118 Q122,121 118,119" fill="none" stroke="#e0e0e0" stroke-width="1"/>
    <path d="M70,125 Q65,140 70,150 Q85,155 100,152 Q115,155 130,150 Q135,140 130,125 Q115,130 100,128 Q85,130 70,125" fill="#fafafa"/>
    <circle cx="80" cy="135" r="4.5" fill="#f5f5f5" opacity="0.8"/>
    <circle cx="100" cy="140" r="5" fill="#f5f5f5" opacity="0.8"/>
    <circle cx="120" cy="135" r="4.5" fill="#f5f5f5" opacity="0.8"/>
    <circle cx="90" cy="145" r="3.5" fill="#f5f5f5" opacity="0.8"/>
    <circle cx="110" cy="145" r="3.5" fill="#f5f5f5" opacity="0.8"/>
</g>`

const giftBody = `<g>
    <rect x="65" y="110" width="70" height="60" fill="#c62828" stroke="#b71c1c" stroke-width="1.2" rx="2.5"/>
    <rect x="62" y="100" width="76" height="12" fill="#d32f2f" stroke="#c62828" stroke-width="1" rx="2"/>
    <rect x="95" y="100" width="10" height="70" fill="#ffd54a"/>
    <rect x="96.5" y="100" width="7" height="70" fill="#ffeb3b"/>
    <rect x="62" y="135" width="76" height="10" fill="#ffd54a"/>
    <rect x="62" y="136.5" width="76" height="7" fill="#ffeb3b"/>
    <rect x="97" y="102" width="2" height="20" fill="#ffffff" opacity="0.4"/>
    <rect x="97" y="150" width="2" height="18" fill="#ffffff" opacity="0.4"/>
    <ellipse cx="88" cy="96" rx="10" ry="7" fill="#ffd54a" stroke="#f9a825" stroke-width="0.8"/>
    <ellipse cx="88" cy="96" rx="8" ry="5.5" fill="#ffeb3b"/>
    <ellipse cx="112" cy="96" rx="10" ry="7" fill="#ffd54a" stroke="#f9a825" stroke-width="0.8"/>
    <ellipse cx="112" cy="96" rx="8" ry="5.5" fill="#ffeb3b"/>
    <circle cx="100" cy="96" r="5.5" fill="#f9a825" stroke="#f57f17" stroke-width="0.6"/>
    <path d="M95,101 L90,112 L92,115" fill="#ffd54a" stroke="#f9a825" stroke-width="0.6"/>
    <path d="M105,101 L110,112 L108,115" fill="#ffeb3b" stroke="#f9a825" stroke-width="0.6"/>
    <circle cx="70" cy="115" r="2" fill="#ffeb3b" opacity="0.6"/>
    <circle cx="130" cy="115" r="2" fill="#ffeb3b" opacity="0.6"/>
    <circle cx="70" cy="165" r="2" fill="#ffeb3b" opacity="0.6"/>
    <circle cx="130" cy="165" r="2" fill="#ffeb3b" opacity="0.6"/>
</g>`

const starBody = `<g>
    <polygon points="100,55 112,88 147,93 123,115 130,150 100,133 70,150 77,115 53,93 88,88" fill="#fdd835" stroke="#f9a825" stroke-width="1.8"/>
    <polygon points="100,68 108,92 132,96 116,111 120,135 100,122 80,135 84,111 68,96 92,92" fill="#ffeb3b" stroke="#fbc02d" stroke-width="1.2"/>
    <polygon points="100,78 105,95 122,98 113,107 116,124 100,115 84,124 87,107 78,98 95,95" fill="#fff9c4"/>
    <circle cx="100" cy="100" r="9" fill="#fffde7"/>
    <circle cx="100" cy="100" r="5" fill="#ffffff" opacity="0.9"/>
    <circle cx="100" cy="62" r="2.5" fill="#ffffff" opacity="0.85"/>
    <circle cx="138" cy="93" r="2.2" fill="#ffffff" opacity="0.85"/>
    <circle cx="126" cy="140" r="2.2" fill="#ffffff" opacity="0.85"/>
    <circle cx="74" cy="140" r="2.2" fill="#ffffff" opacity="0.85"/>
    <circle cx="62" cy="93" r="2.2" fill="#ffffff" opacity="0.85"/>
</g>`

const candyCaneBody = `<g>
    <path d="M100,180 L100,105 Q100,75 120,75 Q140,75 140,95 Q140,115 120,115" fill="none" stroke="#fafafa" stroke-width="18" stroke-linecap="round"/>
    <path d="M100,172 L100,158" stroke="#d32f2f" stroke-width="18" stroke-linecap="round"/>
    <path d="M100,146 L100,132" stroke="#d32f2f" stroke-width="18" stroke-linecap="round"/>
    <path d="M100,120 L100,106" stroke="#d32f2f" stroke-width="18" stroke-linecap="round"/>
    <path d="M102,98 Q102,75 120,75" stroke="#d32f2f" stroke-width="18" stroke-linecap="round"/>
    <path d="M122,77 Q132,77 132,87" stroke="#d32f2f" stroke-width="18" stroke-linecap="round"/>
    <path d="M132,99 Q132,108 124,112" stroke="#d32f2f" stroke-width="18" stroke-linecap="round"/>
    <path d="M94,175 L94,108" stroke="#ffffff" stroke-width="4" opacity="0.5" stroke-linecap="round"/>
    <path d="M96,100 Q96,78 116,78" stroke="#ffffff" stroke-width="3" opacity="0.5" stroke-linecap="round"/>
    <path d="M106,165 L106,115" stroke="#ef5350" stroke-width="2.5" opacity="0.4" stroke-linecap="round"/>
    <ellipse cx="130" cy="95" rx="8" ry="6" fill="#c62828"/>
    <ellipse cx="145" cy="90" rx="7" ry="5" fill="#d32f2f"/>
    <circle cx="138" cy="92" r="4" fill="#b71c1c"/>
</g>`

const bellBody = `<g>
    <path d="M75,105 Q75,88 100,88 Q125,88 125,105 L128,128 Q128,138 116,144 L116,148 Q116,152 100,152 Q84,152 84,148 L84,144 Q72,138 72,128 Z" fill="#ffb300" stroke="#f57f17" stroke-width="1.4"/>
    <ellipse cx="100" cy="152" rx="24" ry="6.5" fill="#f57f17"/>
    <ellipse cx="100" cy="151" rx="22" ry="5" fill="#ffc107"/>
    <line x1="100" y1="148" x2="100" y2="158" stroke="#5d4037" stroke-width="2"/>
    <ellipse cx="100" cy="160" rx="4.5" ry="5.5" fill="#6d4c41"/>
    <ellipse cx="99" cy="159" rx="2" ry="2.5" fill="#8d6e63" opacity="0.6"/>
    <path d="M88,86 Q100,82 112,86" fill="none" stroke="#c62828" stroke-width="4.5" stroke-linecap="round"/>
    <circle cx="86" cy="84" r="5" fill="#d32f2f"/>
    <circle cx="114" cy="84" r="5" fill="#d32f2f"/>
    <circle cx="100" cy="83" r="3.5" fill="#b71c1c"/>
    <ellipse cx="90" cy="82" rx="4.5" ry="3" fill="#43a047" transform="rotate(-20 90 82)"/>
    <ellipse cx="98" cy="80" rx="4.5" ry="3" fill="#4caf50"/>
    <ellipse cx="102" cy="80" rx="4.5" ry="3" fill="#4caf50"/>
    <ellipse cx="110" cy="82" rx="4.5" ry="3" fill="#43a047" transform="rotate(20 110 82)"/>
    <circle cx="94" cy="84" r="2.2" fill="#e53935"/>
    <circle cx="106" cy="84" r="2.2" fill="#e53935"/>
    <ellipse cx="88" cy="98" rx="9" ry="18" fill="#ffffff" opacity="0.35"/>
    <ellipse cx="85" cy="115" rx="6" ry="12" fill="#ffffff" opacity="0.25"/>
    <path d="M78,110 Q82,128 86,138" fill="none" stroke="#ffffff" stroke-width="2.5" opacity="0.2"/>
    <path d="M90,135 Q100,138 110,135" fill="none" stroke="#f57f17" stroke-width="1.2" opacity="0.6"/>
</g>`
